package transliteration

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jusunglee/lipi/internal/indic"
)

// MappingSource lists the custom glyph overrides to layer on the defaults.
type MappingSource func(ctx context.Context) ([]indic.Override, error)

// Store holds the Transliterator in use and swaps it when custom mappings
// change. Readers never block.
type Store struct {
	cur    atomic.Pointer[Transliterator]
	source MappingSource
}

// NewStore builds the initial Transliterator from source. A nil source means
// the default tables only.
func NewStore(ctx context.Context, source MappingSource) (*Store, error) {
	s := &Store{source: source}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current Transliterator.
func (s *Store) Get() *Transliterator {
	return s.cur.Load()
}

// Reload rebuilds the Transliterator from the source. On error the previous
// one stays in use.
func (s *Store) Reload(ctx context.Context) error {
	var overrides []indic.Override
	if s.source != nil {
		var err error
		overrides, err = s.source(ctx)
		if err != nil {
			return fmt.Errorf("loading mappings: %w", err)
		}
	}
	s.cur.Store(NewDefault(overrides...))
	return nil
}
