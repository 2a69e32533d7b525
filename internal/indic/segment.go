package indic

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Syllable is one segmented unit of romanized input.
//
// An empty Consonant is a bare vowel. An empty Vowel after a consonant is the
// inherent vowel, rendered with a virama. Final holds an anusvara or visarga
// closing the syllable. All three empty except Final only happens for a word
// that starts with a final marker.
type Syllable struct {
	Consonant string `json:"consonant"`
	Vowel     string `json:"vowel"`
	Final     string `json:"final,omitempty"`
}

// Roman returns the romanized spelling of the syllable.
func (s Syllable) Roman() string {
	return s.Consonant + s.Vowel + s.Final
}

// Word is the syllables of one whitespace-delimited chunk of input.
type Word struct {
	Text      string     `json:"text"`
	Syllables []Syllable `json:"syllables"`
}

// Segmenter splits romanized text into syllables by greedy longest match.
type Segmenter struct {
	consonants tokenSet
	vowels     tokenSet
	finals     tokenSet
}

// NewSegmenter builds the token classes from t. Consonants are the mapping
// keys that are neither vowels nor final markers.
func NewSegmenter(t *Tables) *Segmenter {
	s := &Segmenter{
		consonants: newTokenSet(nil),
		vowels:     newTokenSet(t.Vowels),
		finals:     newTokenSet(t.Finals),
	}
	for token := range t.Mappings {
		if s.vowels.has(token) || s.finals.has(token) {
			continue
		}
		s.consonants.add(token)
	}
	return s
}

// Words splits text on whitespace and segments each chunk independently.
func (s *Segmenter) Words(text string) []Word {
	fields := strings.Fields(text)
	words := make([]Word, 0, len(fields))
	for _, f := range fields {
		words = append(words, Word{Text: f, Syllables: s.Segment(f)})
	}
	return words
}

// Segment splits one word into syllables. Matching is case-insensitive and
// runs on NFC runes, so a token with combining marks is matched whole.
// Unrecognized runes are dropped.
func (s *Segmenter) Segment(text string) []Syllable {
	runes := []rune(norm.NFC.String(strings.ToLower(text)))
	var out []Syllable

	for i := 0; i < len(runes); {
		if tok, n := s.finals.match(runes, i); n > 0 {
			if len(out) == 0 {
				out = append(out, Syllable{})
			}
			out[len(out)-1].Final = tok
			i += n
			continue
		}

		if cons, n := s.consonants.match(runes, i); n > 0 {
			i += n
			vowel, m := s.vowels.match(runes, i)
			i += m
			out = append(out, Syllable{Consonant: cons, Vowel: vowel})
			continue
		}

		if vowel, n := s.vowels.match(runes, i); n > 0 {
			out = append(out, Syllable{Vowel: vowel})
			i += n
			continue
		}

		i++
	}
	return out
}

// match returns the longest token of the set starting at runes[i], and its
// length in runes. It returns 0 when nothing matches.
func (ts tokenSet) match(runes []rune, i int) (string, int) {
	for n := min(ts.longest, len(runes)-i); n > 0; n-- {
		if tok := string(runes[i : i+n]); ts.has(tok) {
			return tok, n
		}
	}
	return "", 0
}
