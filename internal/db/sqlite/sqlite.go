package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/lipi/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Fixed-width so that stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
	q  querier
}

// New creates a new SQLite repository
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// A single connection keeps :memory: databases shared and serializes writers.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if isNew && dbPath != ":memory:" {
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Repository{db: sqliteDB, q: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// History methods

func (r *Repository) SaveLookup(ctx context.Context, arg db.SaveLookupParams) (db.Lookup, error) {
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO lookups (input, ligatures, source, syllables, fallbacks, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, arg.Input, arg.Ligatures, arg.Source, arg.Syllables, arg.Fallbacks, formatTime(time.Now()))
	if err != nil {
		return db.Lookup{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Lookup{}, err
	}

	return r.GetLookup(ctx, id)
}

func (r *Repository) GetLookup(ctx context.Context, id int64) (db.Lookup, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, input, ligatures, source, syllables, fallbacks, created_at
		FROM lookups
		WHERE id = ?
	`, id)

	return scanLookup(row)
}

func (r *Repository) ListRecentLookups(ctx context.Context, limit int32) ([]db.Lookup, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, input, ligatures, source, syllables, fallbacks, created_at
		FROM lookups
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []db.Lookup
	for rows.Next() {
		l, err := scanLookup(rows)
		if err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

func (r *Repository) CountLookups(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM lookups`).Scan(&count)
	return count, err
}

func (r *Repository) DeleteLookupsBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM lookups WHERE created_at < ?`, formatTime(before))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Mapping methods

func (r *Repository) UpsertMapping(ctx context.Context, arg db.UpsertMappingParams) (db.Mapping, error) {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO mappings (token, script, glyph, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (token, script) DO UPDATE SET
			glyph = excluded.glyph,
			updated_at = excluded.updated_at
	`, arg.Token, arg.Script, arg.Glyph, formatTime(time.Now()))
	if err != nil {
		return db.Mapping{}, err
	}

	row := r.q.QueryRowContext(ctx, `
		SELECT token, script, glyph, updated_at
		FROM mappings
		WHERE token = ? AND script = ?
	`, arg.Token, arg.Script)
	return scanMapping(row)
}

func (r *Repository) ListMappings(ctx context.Context) ([]db.Mapping, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT token, script, glyph, updated_at
		FROM mappings
		ORDER BY token, script
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mappings []db.Mapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

func (r *Repository) DeleteMapping(ctx context.Context, arg db.DeleteMappingParams) (int64, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM mappings WHERE token = ? AND script = ?`, arg.Token, arg.Script)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Helper functions

type scanner interface {
	Scan(dest ...any) error
}

func scanLookup(row scanner) (db.Lookup, error) {
	var l db.Lookup
	var createdAtStr string
	err := row.Scan(&l.ID, &l.Input, &l.Ligatures, &l.Source, &l.Syllables, &l.Fallbacks, &createdAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Lookup{}, db.ErrNoRows
	}
	if err != nil {
		return db.Lookup{}, err
	}
	l.CreatedAt, _ = time.Parse(timeLayout, createdAtStr)
	return l, nil
}

func scanMapping(row scanner) (db.Mapping, error) {
	var m db.Mapping
	var updatedAtStr string
	err := row.Scan(&m.Token, &m.Script, &m.Glyph, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Mapping{}, db.ErrNoRows
	}
	if err != nil {
		return db.Mapping{}, err
	}
	m.UpdatedAt, _ = time.Parse(timeLayout, updatedAtStr)
	return m, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
