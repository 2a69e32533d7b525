// Package history records served transliterations.
package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/metrics"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/samber/lo"
)

// Recorder saves lookups. A Recorder without a repository records nothing.
type Recorder struct {
	repo db.Repository
	log  *slog.Logger
}

func NewRecorder(repo db.Repository, log *slog.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// ErrDisabled is returned by Save when the Recorder has no repository.
var ErrDisabled = errors.New("history disabled")

// Enabled reports whether lookups are actually stored.
func (r *Recorder) Enabled() bool {
	return r != nil && r.repo != nil
}

// Save stores res as a lookup from source. Empty inputs are skipped.
func (r *Recorder) Save(ctx context.Context, source string, res transliteration.Result) error {
	if !r.Enabled() {
		return ErrDisabled
	}
	if len(res.Words) == 0 {
		return nil
	}

	fallbacks := lo.Sum(lo.Values(res.Fallbacks()))
	_, err := r.repo.SaveLookup(ctx, db.SaveLookupParams{
		Input:     res.Input,
		Ligatures: res.Ligatures,
		Source:    source,
		Syllables: int32(res.SyllableCount()),
		Fallbacks: int32(fallbacks),
	})
	if err != nil {
		metrics.LookupsSaved.WithLabelValues(source, "error").Inc()
		return fmt.Errorf("saving lookup: %w", err)
	}
	metrics.LookupsSaved.WithLabelValues(source, "success").Inc()
	return nil
}

// Record is Save for callers that must not fail on history: errors are
// logged and dropped.
func (r *Recorder) Record(ctx context.Context, source string, res transliteration.Result) {
	if err := r.Save(ctx, source, res); err != nil && !errors.Is(err, ErrDisabled) {
		r.log.WarnContext(ctx, "saving lookup", "source", source, "error", err)
	}
}

// Prune deletes lookups older than retention.
func Prune(ctx context.Context, repo db.Repository, retention time.Duration) (int64, error) {
	n, err := repo.DeleteLookupsBefore(ctx, time.Now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("deleting old lookups: %w", err)
	}
	metrics.HistoryPruned.Add(float64(n))
	return n, nil
}

// DefaultPruneInterval is used when RunPruner is given a non-positive interval.
const DefaultPruneInterval = time.Hour

// RunPruner prunes every interval until ctx is done. A zero retention keeps
// history forever and returns immediately.
func RunPruner(ctx context.Context, repo db.Repository, retention, interval time.Duration, log *slog.Logger) error {
	if retention <= 0 {
		return nil
	}
	if interval <= 0 {
		interval = DefaultPruneInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		pruneCtx, cancel := context.WithTimeout(ctx, time.Minute)
		n, err := Prune(pruneCtx, repo, retention)
		cancel()
		if err != nil {
			log.ErrorContext(ctx, "pruning history", "error", err)
		} else if n > 0 {
			log.InfoContext(ctx, "pruned history", "deleted", n, "retention", retention)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
