package db

import (
	"context"
	"time"

	"github.com/jusunglee/lipi/internal/indic"
)

// Lookup is one transliteration request kept in history.
type Lookup struct {
	ID        int64
	Input     string
	Ligatures bool
	Source    string
	Syllables int32
	Fallbacks int32
	CreatedAt time.Time
}

type SaveLookupParams struct {
	Input     string
	Ligatures bool
	Source    string
	Syllables int32
	Fallbacks int32
}

// Mapping is a user-supplied glyph for a token in one script.
type Mapping struct {
	Token     string
	Script    string
	Glyph     string
	UpdatedAt time.Time
}

type UpsertMappingParams struct {
	Token  string
	Script string
	Glyph  string
}

type DeleteMappingParams struct {
	Token  string
	Script string
}

// Lookup sources
const (
	SourceCLI     = "cli"
	SourceTUI     = "tui"
	SourceWeb     = "web"
	SourceDiscord = "discord"
)

// Repository defines the interface for database operations
type Repository interface {
	// History
	SaveLookup(ctx context.Context, arg SaveLookupParams) (Lookup, error)
	GetLookup(ctx context.Context, id int64) (Lookup, error)
	ListRecentLookups(ctx context.Context, limit int32) ([]Lookup, error)
	CountLookups(ctx context.Context) (int64, error)
	DeleteLookupsBefore(ctx context.Context, before time.Time) (int64, error)

	// Custom mappings
	UpsertMapping(ctx context.Context, arg UpsertMappingParams) (Mapping, error)
	ListMappings(ctx context.Context) ([]Mapping, error)
	DeleteMapping(ctx context.Context, arg DeleteMappingParams) (int64, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	// Lifecycle
	Close() error
}

// Overrides converts stored mappings into table overrides. Mappings naming a
// script that no longer exists are skipped.
func Overrides(mappings []Mapping) []indic.Override {
	out := make([]indic.Override, 0, len(mappings))
	for _, m := range mappings {
		script, ok := indic.ParseScript(m.Script)
		if !ok {
			continue
		}
		out = append(out, indic.Override{Token: m.Token, Script: script, Glyph: m.Glyph})
	}
	return out
}

// OverrideSource reads the stored mappings of repo as table overrides.
func OverrideSource(repo Repository) func(ctx context.Context) ([]indic.Override, error) {
	return func(ctx context.Context) ([]indic.Override, error) {
		mappings, err := repo.ListMappings(ctx)
		if err != nil {
			return nil, err
		}
		return Overrides(mappings), nil
	}
}
