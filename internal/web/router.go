package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/history"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/jusunglee/lipi/internal/web/handlers"
	"github.com/jusunglee/lipi/internal/web/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	// AdminAPIKey enables the mapping write endpoints. Empty disables them.
	AdminAPIKey string
	// RateLimit is the number of requests allowed per IP and minute.
	RateLimit int
}

type Router struct {
	repo   db.Repository
	store  *transliteration.Store
	log    *slog.Logger
	health http.HandlerFunc
	cfg    Config
}

func NewRouter(repo db.Repository, store *transliteration.Store, log *slog.Logger, health http.HandlerFunc, cfg Config) *Router {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 60
	}
	return &Router{
		repo:   repo,
		store:  store,
		log:    log,
		health: health,
		cfg:    cfg,
	}
}

// Handler builds the API mux. ctx bounds the rate limiter's sweeper.
func (r *Router) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	transliterateHandler := handlers.NewTransliterateHandler(r.store, history.NewRecorder(r.repo, r.log), r.log)
	historyHandler := handlers.NewHistoryHandler(r.repo, r.log)
	mappingHandler := handlers.NewMappingHandler(r.repo, r.store, r.log)

	rateLimiter := middleware.NewRateLimiter(ctx, r.cfg.RateLimit, time.Minute)

	common := []middleware.Middleware{
		middleware.PrometheusMetrics(),
		middleware.RequestLogger(r.log),
		middleware.Recover(r.log),
	}
	route := func(pattern string, h http.HandlerFunc, extra ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Chain(h, append(append([]middleware.Middleware{}, common...), extra...)...))
	}

	route("GET /api/v1/transliterate", transliterateHandler.Get,
		middleware.RateLimit(rateLimiter),
		middleware.CacheControl("public, max-age=300"),
	)
	route("POST /api/v1/transliterate", transliterateHandler.Post,
		middleware.RateLimit(rateLimiter),
		middleware.MaxBodyBytes(64<<10),
	)
	route("GET /api/v1/scripts", transliterateHandler.Scripts,
		middleware.CacheControl("public, max-age=3600"),
	)
	route("GET /api/v1/history", historyHandler.List,
		middleware.CacheControl("no-store"),
	)
	route("GET /api/v1/mappings", mappingHandler.List,
		middleware.CacheControl("no-store"),
	)
	route("PUT /api/v1/mappings", mappingHandler.Put,
		middleware.APIKeyAuth(r.cfg.AdminAPIKey),
		middleware.MaxBodyBytes(4<<10),
	)
	route("DELETE /api/v1/mappings/{script}/{token}", mappingHandler.Delete,
		middleware.APIKeyAuth(r.cfg.AdminAPIKey),
	)

	if r.health != nil {
		mux.HandleFunc("GET /health", r.health)
	}
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.CORS(mux)
}
