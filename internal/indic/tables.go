// Package indic segments romanized Latin text into Indic syllables and
// renders them in Brahmi-derived scripts.
//
// The package holds no mutable state: a Tables value is built once, and the
// Segmenter and Renderer derived from it are safe for concurrent use.
package indic

import (
	"maps"
	"unicode/utf8"
)

// Script identifies a target writing system.
type Script string

const (
	Brahmi      Script = "brahmi"
	Sinhala     Script = "sinhala"
	Tamil       Script = "tamil"
	Devanagari  Script = "devanagari"
	TamilBrahmi Script = "tamilbrahmi"
)

// Scripts lists every supported script in display order.
var Scripts = []Script{Brahmi, Sinhala, Tamil, Devanagari, TamilBrahmi}

// ParseScript returns the script named s.
func ParseScript(s string) (Script, bool) {
	for _, sc := range Scripts {
		if string(sc) == s {
			return sc, true
		}
	}
	return "", false
}

const (
	// NotApplicable marks a sound with no letter in a script.
	NotApplicable = "[n/a]"

	// Unknown is rendered in place of anything that cannot be shown.
	Unknown = "(?)"

	ZWJ = "\u200d"
)

// Entry maps a script to the glyph of one token.
type Entry map[Script]string

// Mappings maps a romanization token to its glyphs.
type Mappings map[string]Entry

// Tables is the read-only data the segmenter and renderer work from.
type Tables struct {
	Mappings   Mappings
	VowelSigns map[Script]map[string]string
	Viramas    map[Script]string

	// Vowels and Finals are the vowel and final-marker token classes.
	// Every other key of Mappings is a consonant.
	Vowels []string
	Finals []string

	// Aliases orders the tokens that share a glyph, keyed by script and glyph.
	Aliases map[Script]map[string][]string
}

// DefaultTables returns the built-in tables.
func DefaultTables() *Tables {
	return &Tables{
		Mappings:   defaultMappings,
		VowelSigns: defaultVowelSigns,
		Viramas:    defaultViramas,
		Vowels:     defaultVowels,
		Finals:     defaultFinals,
		Aliases:    defaultAliases,
	}
}

// Glyph returns the glyph of token in script. It reports false when the
// token is unknown, has no entry for the script, or is NotApplicable.
func (t *Tables) Glyph(token string, script Script) (string, bool) {
	entry, ok := t.Mappings[token]
	if !ok {
		return "", false
	}
	g, ok := entry[script]
	if !ok || g == "" || g == NotApplicable {
		return "", false
	}
	return g, true
}

// VowelSign returns the dependent sign of vowel in script. The inherent
// vowel has an empty sign, which is still reported as present.
func (t *Tables) VowelSign(vowel string, script Script) (string, bool) {
	sign, ok := t.VowelSigns[script][vowel]
	return sign, ok
}

// Virama returns the vowel killer of script.
func (t *Tables) Virama(script Script) string {
	return t.Viramas[script]
}

// Override replaces or adds one glyph.
type Override struct {
	Token  string
	Script Script
	Glyph  string
}

// WithOverrides returns a copy of t with the overrides applied. t is not
// modified.
func (t *Tables) WithOverrides(overrides []Override) *Tables {
	if len(overrides) == 0 {
		return t
	}
	out := *t
	out.Mappings = make(Mappings, len(t.Mappings))
	for token, entry := range t.Mappings {
		out.Mappings[token] = entry
	}
	cloned := make(map[string]bool)
	for _, o := range overrides {
		if !cloned[o.Token] {
			entry := maps.Clone(out.Mappings[o.Token])
			if entry == nil {
				entry = make(Entry)
			}
			out.Mappings[o.Token] = entry
			cloned[o.Token] = true
		}
		out.Mappings[o.Token][o.Script] = o.Glyph
	}
	return &out
}

// tokenSet is a membership set that also tracks its longest token in runes.
type tokenSet struct {
	tokens  map[string]struct{}
	longest int
}

func newTokenSet(tokens []string) tokenSet {
	s := tokenSet{tokens: make(map[string]struct{}, len(tokens))}
	for _, tok := range tokens {
		s.add(tok)
	}
	return s
}

func (s *tokenSet) add(tok string) {
	s.tokens[tok] = struct{}{}
	s.longest = max(s.longest, utf8.RuneCountInString(tok))
}

func (s tokenSet) has(tok string) bool {
	_, ok := s.tokens[tok]
	return ok
}
