package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := parseFlags([]string{
		"--no-ligatures",
		"--scripts", "tamil,sinhala",
		"--variant", "tamil:core",
		"--map", "q=sinhala:ක",
		"--map", "f=brahmi:\U00011028",
		"dharma", "kṣa",
	})
	require.NoError(t, err)

	assert.False(t, cfg.ligatures)
	assert.Equal(t, []indic.Script{indic.Tamil, indic.Sinhala}, cfg.scripts)
	assert.Equal(t, "core", cfg.variant.Name)
	assert.Len(t, cfg.overrides, 2)
	assert.Equal(t, "dharma kṣa", cfg.text)
}

func TestParseFlagsErrors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	for _, args := range [][]string{
		{"--scripts", "latin"},
		{"--variant", "sinhala"},
		{"--map", "broken"},
		{"--unknown"},
	} {
		_, err := parseFlags(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestMainJSON(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	var out bytes.Buffer
	require.NoError(t, mainE([]string{"--json", "--scripts", "devanagari", "dharma"}, &out))

	var res transliteration.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Words, 1)
	assert.Equal(t, "धर्म", res.Words[0].Full[indic.Devanagari])
	assert.True(t, res.Ligatures)
}

func TestMainTable(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	var out bytes.Buffer
	require.NoError(t, mainE([]string{"--map", "f=brahmi:\U00011028", "--scripts", "brahmi", "fa"}, &out))
	assert.Contains(t, out.String(), "\U00011028")
	assert.NotContains(t, out.String(), indic.Unknown)
}

func TestMainHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lipi.db")
	t.Setenv("DATABASE_URL", dbPath)

	var out bytes.Buffer
	require.NoError(t, mainE([]string{"rama"}, &out))
	require.NoError(t, mainE([]string{"sita"}, &out))

	out.Reset()
	require.NoError(t, mainE([]string{"--history", "5"}, &out))
	assert.Contains(t, out.String(), "rama")
	assert.Contains(t, out.String(), "sita")
}

func TestMainHistoryNeedsDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := mainE([]string{"--history", "5"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "--history needs --database-url")
}
