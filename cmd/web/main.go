package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/db/dbopen"
	"github.com/jusunglee/lipi/internal/db/postgres"
	"github.com/jusunglee/lipi/internal/health"
	"github.com/jusunglee/lipi/internal/history"
	"github.com/jusunglee/lipi/internal/logger"
	"github.com/jusunglee/lipi/internal/metrics"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/jusunglee/lipi/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

//go:embed all:dist
var staticFiles embed.FS

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("lipi-web")

	var (
		port             = fs_.Int64Long("port", 3000, "HTTP server port")
		databaseURL      = fs_.StringLong("database-url", "./lipi.db", "SQLite path or PostgreSQL connection URL")
		adminAPIKey      = fs_.StringLong("admin-api-key", "", "API key required to edit custom mappings (empty disables editing)")
		rateLimit        = fs_.IntLong("rate-limit", 60, "Requests per minute allowed per client IP")
		historyRetention = fs_.DurationLong("history-retention", 30*24*time.Hour, "Delete lookups older than this (0 keeps them forever)")
		pruneInterval    = fs_.DurationLong("prune-interval", history.DefaultPruneInterval, "How often to prune history (0 uses the default)")
	)

	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := dbopen.Open(ctx, *databaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer repo.Close()
	log.InfoContext(ctx, "connected to database", "postgres", dbopen.IsPostgres(*databaseURL))

	store, err := transliteration.NewStore(ctx, db.OverrideSource(repo))
	if err != nil {
		return fmt.Errorf("loading custom mappings: %w", err)
	}

	healthServer := health.New(0, map[string]health.Check{
		"database": func(ctx context.Context) error {
			_, err := repo.CountLookups(ctx)
			return err
		},
	})

	router := web.NewRouter(repo, store, log, healthServer.HandleHealth, web.Config{
		AdminAPIKey: *adminAPIKey,
		RateLimit:   *rateLimit,
	})

	g, ctx := errgroup.WithContext(ctx)
	apiHandler := router.Handler(ctx)

	// Serve API routes first, fall back to the embedded page
	distFS, err := fs.Sub(staticFiles, "dist")
	if err != nil {
		return fmt.Errorf("creating sub filesystem: %w", err)
	}
	fileServer := http.FileServer(http.FS(distFS))

	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			apiHandler.ServeHTTP(w, r)
			return
		}

		path := r.URL.Path
		if path == "/" {
			path = "/index.html"
		}
		if _, err := fs.Stat(distFS, strings.TrimPrefix(path, "/")); err != nil {
			r.URL.Path = "/"
		}
		w.Header().Set("Cache-Control", "public, s-maxage=60, max-age=0")
		fileServer.ServeHTTP(w, r)
	}))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g.Go(func() error {
		log.InfoContext(ctx, "starting web server", "port", *port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return history.RunPruner(ctx, repo, *historyRetention, *pruneInterval, log)
	})

	// Periodically export pgxpool stats as Prometheus gauges
	if pg, ok := repo.(*postgres.Repository); ok {
		g.Go(func() error {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					metrics.ObservePool(pg.PoolStats())
				case <-ctx.Done():
					return nil
				}
			}
		})
	}

	return g.Wait()
}
