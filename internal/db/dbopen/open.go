// Package dbopen picks a repository implementation from a database URL.
package dbopen

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/db/postgres"
	"github.com/jusunglee/lipi/internal/db/sqlite"
)

// IsPostgres reports whether url names a PostgreSQL database.
func IsPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// Open connects to PostgreSQL for postgres:// URLs and opens a SQLite file
// for anything else.
func Open(ctx context.Context, url string) (db.Repository, error) {
	if url == "" {
		return nil, fmt.Errorf("database url is empty")
	}
	if IsPostgres(url) {
		repo, err := postgres.New(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return repo, nil
	}
	repo, err := sqlite.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	return repo, nil
}
