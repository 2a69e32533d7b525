package metrics

import (
	"testing"

	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveResult(t *testing.T) {
	tr := transliteration.NewDefault()
	res := tr.Transliterate("fa ka", transliteration.Options{Ligatures: true, Scripts: []indic.Script{indic.Brahmi}})

	before := testutil.ToFloat64(TransliterationsTotal.WithLabelValues("test", "true"))
	beforeSyl := testutil.ToFloat64(SyllablesTotal.WithLabelValues("test"))
	beforeFallback := testutil.ToFloat64(FallbackGlyphsTotal.WithLabelValues("brahmi"))

	ObserveResult("test", res)

	assert.Equal(t, before+1, testutil.ToFloat64(TransliterationsTotal.WithLabelValues("test", "true")))
	assert.Equal(t, beforeSyl+2, testutil.ToFloat64(SyllablesTotal.WithLabelValues("test")))
	assert.Equal(t, beforeFallback+1, testutil.ToFloat64(FallbackGlyphsTotal.WithLabelValues("brahmi")))
}
