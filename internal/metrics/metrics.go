package metrics

import (
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lipi_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_rate_limit_hits_total",
		Help: "Total rate limit rejections by surface",
	}, []string{"surface"})
)

// Transliteration metrics.
var (
	TransliterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_transliterations_total",
		Help: "Transliterations by surface and ligature setting",
	}, []string{"surface", "ligatures"})

	SyllablesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_syllables_total",
		Help: "Segmented syllables by surface",
	}, []string{"surface"})

	FallbackGlyphsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_fallback_glyphs_total",
		Help: "Syllables rendered as the unknown marker, by script",
	}, []string{"script"})

	LookupsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_lookups_saved_total",
		Help: "History writes by source and result",
	}, []string{"source", "result"})

	HistoryPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lipi_history_pruned_total",
		Help: "History rows deleted by the retention pruner",
	})

	DiscordCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lipi_discord_commands_total",
		Help: "Discord slash commands by command and result",
	}, []string{"command", "result"})
)

// Database pool metrics (gauges updated periodically).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lipi_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lipi_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lipi_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lipi_db_pool_max_conns",
		Help: "Max connections configured for the pool",
	})
)

// ObserveResult records one transliteration served on surface.
func ObserveResult(surface string, res transliteration.Result) {
	TransliterationsTotal.WithLabelValues(surface, strconv.FormatBool(res.Ligatures)).Inc()

	SyllablesTotal.WithLabelValues(surface).Add(float64(res.SyllableCount()))

	for script, n := range res.Fallbacks() {
		if n > 0 {
			FallbackGlyphsTotal.WithLabelValues(string(script)).Add(float64(n))
		}
	}
}

// ObservePool copies pgxpool counters into the pool gauges.
func ObservePool(s *pgxpool.Stat) {
	DBPoolTotalConns.Set(float64(s.TotalConns()))
	DBPoolIdleConns.Set(float64(s.IdleConns()))
	DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
	DBPoolMaxConns.Set(float64(s.MaxConns()))
}
