package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/lipi/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    dbtx
}

// New creates a new PostgreSQL repository
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	config.MaxConns = 5
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes connection pool counters for metrics.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// A panic in fn skips the rollback below; roll back here so the
	// connection goes back to the pool, then re-panic.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	err = fn(&Repository{pool: r.pool, q: tx})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// History methods

const lookupColumns = `id, input, ligatures, source, syllables, fallbacks, created_at`

func (r *Repository) SaveLookup(ctx context.Context, arg db.SaveLookupParams) (db.Lookup, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO lookups (input, ligatures, source, syllables, fallbacks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+lookupColumns,
		arg.Input, arg.Ligatures, arg.Source, arg.Syllables, arg.Fallbacks)
	return scanLookup(row)
}

func (r *Repository) GetLookup(ctx context.Context, id int64) (db.Lookup, error) {
	row := r.q.QueryRow(ctx, `SELECT `+lookupColumns+` FROM lookups WHERE id = $1`, id)
	return scanLookup(row)
}

func (r *Repository) ListRecentLookups(ctx context.Context, limit int32) ([]db.Lookup, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+lookupColumns+`
		FROM lookups
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.Lookup, error) {
		return scanLookup(row)
	})
}

func (r *Repository) CountLookups(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM lookups`).Scan(&count)
	return count, err
}

func (r *Repository) DeleteLookupsBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM lookups WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Mapping methods

func (r *Repository) UpsertMapping(ctx context.Context, arg db.UpsertMappingParams) (db.Mapping, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO mappings (token, script, glyph)
		VALUES ($1, $2, $3)
		ON CONFLICT (token, script) DO UPDATE SET
			glyph = EXCLUDED.glyph,
			updated_at = NOW()
		RETURNING token, script, glyph, updated_at
	`, arg.Token, arg.Script, arg.Glyph)
	return scanMapping(row)
}

func (r *Repository) ListMappings(ctx context.Context) ([]db.Mapping, error) {
	rows, err := r.q.Query(ctx, `
		SELECT token, script, glyph, updated_at
		FROM mappings
		ORDER BY token, script
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.Mapping, error) {
		return scanMapping(row)
	})
}

func (r *Repository) DeleteMapping(ctx context.Context, arg db.DeleteMappingParams) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM mappings WHERE token = $1 AND script = $2`, arg.Token, arg.Script)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Conversion helpers

func scanLookup(row pgx.Row) (db.Lookup, error) {
	var l db.Lookup
	err := row.Scan(&l.ID, &l.Input, &l.Ligatures, &l.Source, &l.Syllables, &l.Fallbacks, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Lookup{}, db.ErrNoRows
	}
	return l, err
}

func scanMapping(row pgx.Row) (db.Mapping, error) {
	var m db.Mapping
	err := row.Scan(&m.Token, &m.Script, &m.Glyph, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Mapping{}, db.ErrNoRows
	}
	return m, err
}
