package indic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	seg := NewSegmenter(DefaultTables())

	tests := []struct {
		name  string
		input string
		want  []Syllable
	}{
		{"longest consonant wins", "cha", []Syllable{{Consonant: "ch", Vowel: "a"}}},
		{"short consonant", "ca", []Syllable{{Consonant: "c", Vowel: "a"}}},
		{"inherent vowel", "k", []Syllable{{Consonant: "k"}}},
		{"final backpatch", "kaṃ", []Syllable{{Consonant: "k", Vowel: "a", Final: "ṃ"}}},
		{"final after bare consonant", "kḥ", []Syllable{{Consonant: "k", Final: "ḥ"}}},
		{"leading final", "ṃa", []Syllable{{Final: "ṃ"}, {Vowel: "a"}}},
		{"aspirate before vowel", "dharma", []Syllable{
			{Consonant: "dh", Vowel: "a"},
			{Consonant: "r"},
			{Consonant: "m", Vowel: "a"},
		}},
		{"two-letter vowel", "kai", []Syllable{{Consonant: "k", Vowel: "ai"}}},
		{"bare vowels", "aiu", []Syllable{{Vowel: "ai"}, {Vowel: "u"}}},
		{"uppercase input", "KĀ", []Syllable{{Consonant: "k", Vowel: "ā"}}},
		{"decomposed macron", "ka\u0304", []Syllable{{Consonant: "k", Vowel: "ā"}}},
		{"combining vowel matched whole", "kr\u0325\u0304", []Syllable{{Consonant: "k", Vowel: "r̥̄"}}},
		{"combining vowel short form", "kr\u0325", []Syllable{{Consonant: "k", Vowel: "r̥"}}},
		{"prenasalized consonant", "n̆ga", []Syllable{{Consonant: "n̆g", Vowel: "a"}}},
		{"stacked consonants", "kṣa", []Syllable{{Consonant: "k"}, {Consonant: "ṣ", Vowel: "a"}}},
		{"unknown runes skipped", "k1xa", []Syllable{{Consonant: "k"}, {Vowel: "a"}}},
		{"nothing recognizable", "123", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Segment(tt.input))
		})
	}
}

func TestSegmentNeverSplitsLongerConsonant(t *testing.T) {
	seg := NewSegmenter(DefaultTables())

	for _, input := range []string{"kha", "gha", "cha", "jha", "ṭha", "ḍha", "tha", "dha", "pha", "bha"} {
		got := seg.Segment(input)
		require.Len(t, got, 1, input)
		assert.Equal(t, input[:len(input)-1], got[0].Consonant, input)
		assert.Equal(t, "a", got[0].Vowel, input)
	}
}

func TestSegmentCustomTokens(t *testing.T) {
	tables := &Tables{
		Mappings: Mappings{
			"c":  {Sinhala: "c"},
			"ch": {Sinhala: "C"},
			"h":  {Sinhala: "h"},
			"a":  {Sinhala: "a"},
		},
		Vowels: []string{"a"},
	}
	seg := NewSegmenter(tables)

	assert.Equal(t, []Syllable{{Consonant: "ch", Vowel: "a"}}, seg.Segment("cha"))
	assert.Equal(t, []Syllable{{Consonant: "c"}, {Consonant: "h", Vowel: "a"}}, seg.Segment("c ha"))
}

func TestWords(t *testing.T) {
	seg := NewSegmenter(DefaultTables())

	words := seg.Words("  rama\tsita ")
	require.Len(t, words, 2)

	assert.Equal(t, "rama", words[0].Text)
	assert.Equal(t, []Syllable{{Consonant: "r", Vowel: "a"}, {Consonant: "m", Vowel: "a"}}, words[0].Syllables)

	assert.Equal(t, "sita", words[1].Text)
	assert.Equal(t, []Syllable{{Consonant: "s", Vowel: "i"}, {Consonant: "t", Vowel: "a"}}, words[1].Syllables)
}

func TestWordsEmpty(t *testing.T) {
	seg := NewSegmenter(DefaultTables())
	assert.Empty(t, seg.Words("   "))
}

func TestSyllableRoman(t *testing.T) {
	assert.Equal(t, "kaṃ", Syllable{Consonant: "k", Vowel: "a", Final: "ṃ"}.Roman())
	assert.Equal(t, "ḥ", Syllable{Final: "ḥ"}.Roman())
}
