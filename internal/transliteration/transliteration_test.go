package transliteration

import (
	"testing"

	"github.com/jusunglee/lipi/internal/indic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliterate(t *testing.T) {
	tr := NewDefault()

	res := tr.Transliterate("dharma", Options{Ligatures: true})
	assert.Equal(t, "dharma", res.Input)
	assert.True(t, res.Ligatures)
	assert.Equal(t, indic.Scripts, res.Scripts)
	require.Len(t, res.Words, 1)

	w := res.Words[0]
	assert.Equal(t, "dharma", w.Text)
	require.Len(t, w.Syllables, 3)
	assert.Equal(t, []string{"dha", "r", "ma"}, []string{w.Syllables[0].Roman, w.Syllables[1].Roman, w.Syllables[2].Roman})

	assert.Equal(t, "ර්", w.Syllables[1].Rendered[indic.Sinhala])
	assert.Equal(t, "\u0DB0\u0DBB\u0DCA\u200D\u0DB8", w.Full[indic.Sinhala])
	assert.Equal(t, "धर्म", w.Full[indic.Devanagari])
	assert.Len(t, w.Full, len(indic.Scripts))
}

func TestTransliterateLigaturesOff(t *testing.T) {
	tr := NewDefault()

	res := tr.Transliterate("dharma", Options{})
	require.Len(t, res.Words, 1)
	assert.Equal(t, "ධර්ම", res.Words[0].Full[indic.Sinhala])
}

func TestTransliterateScripts(t *testing.T) {
	tr := NewDefault()

	res := tr.Transliterate("ka ma", Options{Scripts: []indic.Script{indic.Tamil}})
	assert.Equal(t, []indic.Script{indic.Tamil}, res.Scripts)
	require.Len(t, res.Words, 2)
	for _, w := range res.Words {
		assert.Len(t, w.Full, 1)
		for _, row := range w.Syllables {
			assert.Len(t, row.Rendered, 1)
		}
	}
	assert.Equal(t, "க ம", res.FullText(indic.Tamil))
}

func TestTransliterateEmpty(t *testing.T) {
	tr := NewDefault()

	assert.Empty(t, tr.Transliterate("", Options{}).Words)
	assert.Empty(t, tr.Transliterate(" \t ", Options{}).Words)
}

func TestTransliterateUnrecognizedWord(t *testing.T) {
	tr := NewDefault()

	res := tr.Transliterate("123", Options{})
	require.Len(t, res.Words, 1)
	assert.Empty(t, res.Words[0].Syllables)
	assert.Equal(t, "", res.Words[0].Full[indic.Sinhala])
}

func TestFallbacks(t *testing.T) {
	tr := NewDefault()

	res := tr.Transliterate("fa n̆ga", Options{Scripts: []indic.Script{indic.Brahmi, indic.Sinhala, indic.Tamil}})
	got := res.Fallbacks()
	assert.Equal(t, 2, got[indic.Brahmi])
	assert.Equal(t, 0, got[indic.Sinhala])
	assert.Equal(t, 1, got[indic.Tamil])
}

func TestAliases(t *testing.T) {
	tr := NewDefault()

	res := tr.Transliterate("kæ ṛ ka", Options{})
	require.Len(t, res.Words, 3)
	assert.Equal(t, []string{"ä", "æ"}, res.Words[0].Syllables[0].Aliases)
	assert.Equal(t, []string{"ṛ", "r̥"}, res.Words[1].Syllables[0].Aliases)
	assert.Empty(t, res.Words[2].Syllables[0].Aliases)
}

func TestRomanizations(t *testing.T) {
	tables := indic.DefaultTables()

	tests := []struct {
		name   string
		script indic.Script
		glyph  string
		want   []string
	}{
		{"preferred order", indic.Sinhala, "ඇ", []string{"ä", "æ"}},
		{"long vocalic r", indic.Sinhala, "ඎ", []string{"ṝ", "r̥̄"}},
		{"no preference sorts", indic.Sinhala, "ං", []string{"ṁ", "ṃ"}},
		{"single token", indic.Sinhala, "ක", []string{"k"}},
		{"unknown glyph", indic.Sinhala, "x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Romanizations(tables, tt.script, tt.glyph)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariantMarksSyllables(t *testing.T) {
	tr := NewDefault()
	v, err := ParseVariant("sinhala:sidath")
	require.NoError(t, err)

	res := tr.Transliterate("bhakti", Options{Variant: v})
	require.Len(t, res.Words, 1)
	rows := res.Words[0].Syllables
	require.Len(t, rows, 3)
	assert.True(t, rows[0].OutsideVariant)
	assert.False(t, rows[1].OutsideVariant)
	assert.False(t, rows[2].OutsideVariant)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, indic.Variant{}, v)

	v, err = ParseVariant("tamil:core")
	require.NoError(t, err)
	assert.Equal(t, "core", v.Name)

	for _, bad := range []string{"sidath", "klingon:core", "tamil:sidath"} {
		_, err := ParseVariant(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseScripts(t *testing.T) {
	got, err := ParseScripts("Sinhala, tamil,sinhala")
	require.NoError(t, err)
	assert.Equal(t, []indic.Script{indic.Sinhala, indic.Tamil}, got)

	got, err = ParseScripts("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseScripts("sinhala,latin")
	assert.Error(t, err)
}

func TestWithOverrides(t *testing.T) {
	tr := NewDefault(indic.Override{Token: "f", Script: indic.Brahmi, Glyph: "\U00011028"})

	res := tr.Transliterate("fa", Options{Scripts: []indic.Script{indic.Brahmi}})
	require.Len(t, res.Words, 1)
	assert.Equal(t, "\U00011028", res.Words[0].Full[indic.Brahmi])
	assert.Zero(t, res.Fallbacks()[indic.Brahmi])
}

func TestSyllableCount(t *testing.T) {
	tr := NewDefault()

	assert.Equal(t, 5, tr.Transliterate("dharma kṣa", Options{}).SyllableCount())
	assert.Zero(t, tr.Transliterate("", Options{}).SyllableCount())
}

func TestParseOverride(t *testing.T) {
	got, err := ParseOverride(" Q =Sinhala:\u0D9A")
	require.NoError(t, err)
	assert.Equal(t, indic.Override{Token: "q", Script: indic.Sinhala, Glyph: "\u0D9A"}, got)

	got, err = ParseOverride("a\u0304=brahmi:x")
	require.NoError(t, err)
	assert.Equal(t, "ā", got.Token)

	for _, bad := range []string{"q", "q=sinhala", "=sinhala:x", "q=sinhala:", "q=latin:x"} {
		_, err := ParseOverride(bad)
		assert.Error(t, err, bad)
	}
}

func TestWithScripts(t *testing.T) {
	tr := NewDefault().WithScripts(indic.Devanagari)
	assert.Equal(t, []indic.Script{indic.Devanagari}, tr.Scripts())
	assert.Equal(t, "धर्म", tr.Transliterate("dharma", Options{}).FullText(indic.Devanagari))
	assert.Equal(t, indic.Scripts, tr.WithScripts().Scripts())
}
