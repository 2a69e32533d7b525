package indic

import (
	"maps"
	"strings"
)

// Renderer turns syllables into native-script text.
type Renderer struct {
	tables *Tables
	rules  map[Script]Chain
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRules sets the word-level rule chain of a script, replacing any
// default chain for it.
func WithRules(script Script, chain Chain) RendererOption {
	return func(r *Renderer) {
		r.rules[script] = chain
	}
}

// NewRenderer returns a Renderer over t using the default rule chains.
func NewRenderer(t *Tables, opts ...RendererOption) *Renderer {
	r := &Renderer{
		tables: t,
		rules:  maps.Clone(DefaultRules()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tables returns the tables the renderer was built with.
func (r *Renderer) Tables() *Tables {
	return r.tables
}

// Syllable renders one syllable in script. The result is never empty:
// anything that cannot be shown renders as Unknown. A final marker without a
// glyph in script is left out.
func (r *Renderer) Syllable(syl Syllable, script Script) string {
	var out string

	if syl.Consonant == "" {
		if syl.Vowel != "" {
			g, ok := r.tables.Glyph(syl.Vowel, script)
			if !ok {
				g = Unknown
			}
			out = g
		}
	} else {
		cons, ok := r.tables.Glyph(syl.Consonant, script)
		if !ok {
			return Unknown
		}
		if sign, ok := r.tables.VowelSign(syl.Vowel, script); ok && syl.Vowel != "" {
			out = cons + sign
		} else {
			out = cons + r.tables.Virama(script)
		}
	}

	if syl.Final != "" {
		if g, ok := r.tables.Glyph(syl.Final, script); ok {
			out += g
		}
	}

	if out == "" {
		return Unknown
	}
	return out
}

// Word renders every syllable of w in script and applies the script's
// word-level rules. Optional rules run only when ligatures is true.
func (r *Renderer) Word(w Word, script Script, ligatures bool) string {
	var b strings.Builder
	for _, syl := range w.Syllables {
		b.WriteString(r.Syllable(syl, script))
	}
	return r.PostProcess(script, b.String(), ligatures)
}

// PostProcess applies the word-level rules of script to already rendered
// text.
func (r *Renderer) PostProcess(script Script, text string, ligatures bool) string {
	return r.rules[script].Apply(text, ligatures)
}
