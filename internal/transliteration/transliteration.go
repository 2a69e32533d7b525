// Package transliteration builds the per-syllable and per-word renderings
// shown by every front end.
package transliteration

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jusunglee/lipi/internal/indic"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Options controls one transliteration.
type Options struct {
	Ligatures bool
	// Scripts restricts the output. Empty means every script the
	// Transliterator was built with.
	Scripts []indic.Script
	// Variant flags syllables outside an alphabet subset. The zero value
	// flags nothing.
	Variant indic.Variant
}

// SyllableRow is one segmented syllable and its rendering in each script.
type SyllableRow struct {
	Roman          string                  `json:"roman"`
	Consonant      string                  `json:"consonant,omitempty"`
	Vowel          string                  `json:"vowel,omitempty"`
	Final          string                  `json:"final,omitempty"`
	Rendered       map[indic.Script]string `json:"rendered"`
	Aliases        []string                `json:"aliases,omitempty"`
	OutsideVariant bool                    `json:"outside_variant,omitempty"`
}

// WordResult holds the rows of one input word followed by the whole word in
// each script.
type WordResult struct {
	Text      string                  `json:"text"`
	Syllables []SyllableRow           `json:"syllables"`
	Full      map[indic.Script]string `json:"full"`
}

// Result is the transliteration of a whole input.
type Result struct {
	Input     string         `json:"input"`
	Ligatures bool           `json:"ligatures"`
	Scripts   []indic.Script `json:"scripts"`
	Words     []WordResult   `json:"words"`
}

// Fallbacks counts the cells per script that contain the unknown marker.
func (r Result) Fallbacks() map[indic.Script]int {
	counts := make(map[indic.Script]int, len(r.Scripts))
	for _, w := range r.Words {
		for _, row := range w.Syllables {
			for script, text := range row.Rendered {
				counts[script] += strings.Count(text, indic.Unknown)
			}
		}
	}
	return counts
}

// SyllableCount is the number of segmented syllables over all words.
func (r Result) SyllableCount() int {
	return lo.SumBy(r.Words, func(w WordResult) int {
		return len(w.Syllables)
	})
}

// FullText joins the full-word rendering of every word in script.
func (r Result) FullText(script indic.Script) string {
	return strings.Join(lo.Map(r.Words, func(w WordResult, _ int) string {
		return w.Full[script]
	}), " ")
}

// Transliterator segments input once and renders it in several scripts.
// It is safe for concurrent use.
type Transliterator struct {
	seg     *indic.Segmenter
	r       *indic.Renderer
	scripts []indic.Script
}

// New returns a Transliterator rendering scripts, or every script when none
// are given.
func New(seg *indic.Segmenter, r *indic.Renderer, scripts ...indic.Script) *Transliterator {
	if len(scripts) == 0 {
		scripts = indic.Scripts
	}
	return &Transliterator{seg: seg, r: r, scripts: scripts}
}

// NewDefault builds a Transliterator over the default tables with overrides
// layered on top.
func NewDefault(overrides ...indic.Override) *Transliterator {
	tables := indic.DefaultTables().WithOverrides(overrides)
	return New(indic.NewSegmenter(tables), indic.NewRenderer(tables))
}

// Scripts returns the scripts rendered when Options.Scripts is empty.
func (t *Transliterator) Scripts() []indic.Script {
	return slices.Clone(t.scripts)
}

// WithScripts returns a Transliterator sharing t's tables that renders only
// scripts by default.
func (t *Transliterator) WithScripts(scripts ...indic.Script) *Transliterator {
	return New(t.seg, t.r, scripts...)
}

// Transliterate segments text into words and renders every syllable and
// word. Words without a recognizable syllable are kept with empty rows.
func (t *Transliterator) Transliterate(text string, opts Options) Result {
	scripts := opts.Scripts
	if len(scripts) == 0 {
		scripts = t.scripts
	}

	res := Result{
		Input:     text,
		Ligatures: opts.Ligatures,
		Scripts:   scripts,
	}
	for _, w := range t.seg.Words(text) {
		wr := WordResult{
			Text:      w.Text,
			Syllables: make([]SyllableRow, 0, len(w.Syllables)),
			Full:      make(map[indic.Script]string, len(scripts)),
		}
		for _, syl := range w.Syllables {
			wr.Syllables = append(wr.Syllables, t.row(syl, scripts, opts.Variant))
		}
		for _, script := range scripts {
			wr.Full[script] = t.r.Word(w, script, opts.Ligatures)
		}
		res.Words = append(res.Words, wr)
	}
	return res
}

func (t *Transliterator) row(syl indic.Syllable, scripts []indic.Script, variant indic.Variant) SyllableRow {
	row := SyllableRow{
		Roman:          syl.Roman(),
		Consonant:      syl.Consonant,
		Vowel:          syl.Vowel,
		Final:          syl.Final,
		Rendered:       make(map[indic.Script]string, len(scripts)),
		OutsideVariant: !variant.AllowsSyllable(syl),
	}
	for _, script := range scripts {
		row.Rendered[script] = t.r.Syllable(syl, script)
	}

	tables := t.r.Tables()
	for _, token := range []string{syl.Consonant, syl.Vowel} {
		g, ok := tables.Glyph(token, indic.Sinhala)
		if !ok {
			continue
		}
		if alts := Romanizations(tables, indic.Sinhala, g); len(alts) > 1 {
			row.Aliases = append(row.Aliases, alts...)
		}
	}
	row.Aliases = lo.Uniq(row.Aliases)
	return row
}

// Romanizations lists every token that renders to glyph in script. Tokens
// with a preferred order come first, the rest follow sorted.
func Romanizations(tables *indic.Tables, script indic.Script, glyph string) []string {
	matches := lo.Filter(lo.Keys(tables.Mappings), func(token string, _ int) bool {
		g, ok := tables.Glyph(token, script)
		return ok && g == glyph
	})
	preferred := lo.Filter(tables.Aliases[script][glyph], func(token string, _ int) bool {
		return lo.Contains(matches, token)
	})
	rest := lo.Without(matches, preferred...)
	slices.Sort(rest)
	return append(preferred, rest...)
}

// ParseVariant resolves "script:name", for example "sinhala:sidath". The
// empty string yields the zero Variant.
func ParseVariant(s string) (indic.Variant, error) {
	if s == "" {
		return indic.Variant{}, nil
	}
	scriptName, name, ok := strings.Cut(s, ":")
	if !ok {
		return indic.Variant{}, fmt.Errorf("variant %q: want script:name", s)
	}
	script, ok := indic.ParseScript(scriptName)
	if !ok {
		return indic.Variant{}, fmt.Errorf("variant %q: unknown script %q", s, scriptName)
	}
	v, ok := indic.LookupVariant(script, name)
	if !ok {
		return indic.Variant{}, fmt.Errorf("variant %q: unknown variant for %s", s, script)
	}
	return v, nil
}

// ParseScripts resolves a comma-separated script list. The empty string
// yields nil.
func ParseScripts(s string) ([]indic.Script, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []indic.Script
	for _, name := range strings.Split(s, ",") {
		script, ok := indic.ParseScript(strings.TrimSpace(strings.ToLower(name)))
		if !ok {
			return nil, fmt.Errorf("unknown script %q", name)
		}
		out = append(out, script)
	}
	return lo.Uniq(out), nil
}

// ParseOverride reads a custom mapping written token=script:glyph. The token
// is normalized the way input text is.
func ParseOverride(s string) (indic.Override, error) {
	token, rest, ok := strings.Cut(s, "=")
	if !ok {
		return indic.Override{}, fmt.Errorf("mapping %q: want token=script:glyph", s)
	}
	scriptName, glyph, ok := strings.Cut(rest, ":")
	if !ok {
		return indic.Override{}, fmt.Errorf("mapping %q: want token=script:glyph", s)
	}
	token = norm.NFC.String(strings.ToLower(strings.TrimSpace(token)))
	if token == "" || glyph == "" {
		return indic.Override{}, fmt.Errorf("mapping %q: token and glyph are required", s)
	}
	script, ok := indic.ParseScript(strings.ToLower(strings.TrimSpace(scriptName)))
	if !ok {
		return indic.Override{}, fmt.Errorf("mapping %q: unknown script %q", s, scriptName)
	}
	return indic.Override{Token: token, Script: script, Glyph: glyph}, nil
}
