package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/db/sqlite"
	"github.com/jusunglee/lipi/internal/history"
	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestTypingRerenders(t *testing.T) {
	m := New(transliteration.NewDefault(), nil, Options{Ligatures: true})
	assert.Empty(t, m.Result().Words)

	m = typeText(t, m, "dharma")
	res := m.Result()
	require.Len(t, res.Words, 1)
	assert.Equal(t, "\u0DB0\u0DBB\u0DCA\u200D\u0DB8", res.Words[0].Full[indic.Sinhala])

	m, _ = press(m, tea.KeyBackspace)
	assert.Equal(t, "dharm", m.Result().Input)
}

func TestToggleLigatures(t *testing.T) {
	m := New(transliteration.NewDefault(), nil, Options{Ligatures: true, Initial: "dharma"})
	require.True(t, m.Ligatures())

	m, cmd := press(m, tea.KeyCtrlL)
	assert.Nil(t, cmd)
	assert.False(t, m.Ligatures())
	assert.Equal(t, "\u0DB0\u0DBB\u0DCA\u0DB8", m.Result().Words[0].Full[indic.Sinhala])

	m, _ = press(m, tea.KeyCtrlL)
	assert.True(t, m.Ligatures())
}

func TestTabCyclesScripts(t *testing.T) {
	tr := transliteration.NewDefault()
	m := New(tr, nil, Options{Initial: "ka"})
	assert.Equal(t, tr.Scripts(), m.Result().Scripts)

	for _, want := range tr.Scripts() {
		m, _ = press(m, tea.KeyTab)
		assert.Equal(t, []indic.Script{want}, m.Result().Scripts)
	}

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, tr.Scripts(), m.Result().Scripts)
}

func TestEnterSavesHistory(t *testing.T) {
	ctx := context.Background()
	repo, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	rec := history.NewRecorder(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := New(transliteration.NewDefault(), rec, Options{Initial: "rama"})

	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, savedMsg{input: "rama"}, msg)

	next, _ := m.Update(msg)
	assert.Contains(t, next.View(), `saved "rama" to history`)

	lookups, err := repo.ListRecentLookups(ctx, 10)
	require.NoError(t, err)
	require.Len(t, lookups, 1)
	assert.Equal(t, db.SourceTUI, lookups[0].Source)
}

func TestEnterWithoutInput(t *testing.T) {
	m := New(transliteration.NewDefault(), nil, Options{})
	_, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
}

func TestEnterWithoutDatabase(t *testing.T) {
	recorders := map[string]*history.Recorder{
		"nil recorder":  nil,
		"no repository": history.NewRecorder(nil, slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	for name, rec := range recorders {
		t.Run(name, func(t *testing.T) {
			m := New(transliteration.NewDefault(), rec, Options{Initial: "rama"})
			m, cmd := press(m, tea.KeyEnter)
			assert.Nil(t, cmd)
			assert.Contains(t, m.View(), HistoryDisabledStatus)
			assert.NotContains(t, m.View(), "saved")
		})
	}
}

func TestEnterReportsSaveError(t *testing.T) {
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	rec := history.NewRecorder(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := New(transliteration.NewDefault(), rec, Options{Initial: "rama"})

	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	view := next.View()
	assert.Contains(t, view, `could not save "rama"`)
	assert.NotContains(t, view, "to history")
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := New(transliteration.NewDefault(), nil, Options{})
		_, cmd := press(m, k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	v, err := transliteration.ParseVariant("sinhala:sidath")
	require.NoError(t, err)

	m := New(transliteration.NewDefault(), nil, Options{Initial: "bhakti", Variant: v})
	view := m.View()
	assert.Contains(t, view, "bhakti")
	assert.Contains(t, view, "sinhala")
	assert.Contains(t, view, "variant sinhala:sidath")
	assert.Contains(t, view, "bha "+OutsideMarker)
}

func TestRows(t *testing.T) {
	res := transliteration.NewDefault().Transliterate("kæ", transliteration.Options{Scripts: []indic.Script{indic.Sinhala}})
	assert.Equal(t, [][]string{
		{"kæ (ä / æ)", "\u0D9A\u0DD0"},
		{"kæ", "\u0D9A\u0DD0"},
	}, Rows(res))
}

func TestRenderHistory(t *testing.T) {
	out := RenderHistory([]db.Lookup{
		{ID: 1, Input: "dharma", Source: db.SourceCLI, Syllables: 3, CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
	})
	assert.Contains(t, out, "dharma")
	assert.Contains(t, out, "cli")
	assert.Contains(t, out, "syllables")
}
