package db

import (
	"testing"

	"github.com/jusunglee/lipi/internal/indic"
	"github.com/stretchr/testify/assert"
)

func TestOverrides(t *testing.T) {
	got := Overrides([]Mapping{
		{Token: "f", Script: "brahmi", Glyph: "\U00011028"},
		{Token: "q", Script: "klingon", Glyph: "x"},
	})
	assert.Equal(t, []indic.Override{{Token: "f", Script: indic.Brahmi, Glyph: "\U00011028"}}, got)
	assert.Empty(t, Overrides(nil))
}
