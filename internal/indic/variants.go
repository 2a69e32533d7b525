package indic

// Variant is a named subset of the tokens taught for a script. A variant
// without a token list allows everything.
type Variant struct {
	Name   string
	Script Script
	tokens map[string]struct{}
}

func newVariant(script Script, name string, tokens ...string) Variant {
	v := Variant{Name: name, Script: script}
	if len(tokens) == 0 {
		return v
	}
	v.tokens = make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		v.tokens[t] = struct{}{}
	}
	return v
}

// Allows reports whether token belongs to the variant. The empty token is
// always allowed.
func (v Variant) Allows(token string) bool {
	if v.tokens == nil || token == "" {
		return true
	}
	_, ok := v.tokens[token]
	return ok
}

// AllowsSyllable reports whether every token of syl belongs to the variant.
func (v Variant) AllowsSyllable(syl Syllable) bool {
	return v.Allows(syl.Consonant) && v.Allows(syl.Vowel) && v.Allows(syl.Final)
}

var sinhalaAmishra = []string{
	"a", "ā", "ä", "æ", "ǟ", "ǣ", "i", "ī", "u", "ū", "e", "ē", "o", "ō",
	"k", "g", "j",
	"ṭ", "ḍ", "ṇ",
	"t", "d", "n",
	"p", "b", "m",
	"y", "r", "l", "v",
	"s", "h", "ḷ",
	"ṁ", "ṃ",
}

var sinhalaMishra = []string{
	"a", "ā", "ä", "æ", "ǟ", "ǣ", "i", "ī", "u", "ū", "e", "ē", "ai", "o", "ō", "au",
	"k", "g", "ṅ", "c", "j", "ñ", "ṭ", "ḍ", "ṇ", "t", "d", "n", "p", "b", "m",
	"y", "r", "l", "v", "s", "h", "ḷ",
	"ṁ", "ṃ", "ḥ",
	"kh", "gh", "ch", "jh", "ṭh", "ḍh", "th", "dh", "ph", "bh",
	"ś", "ṣ",
	"ṛ", "r̥", "ṝ", "r̥̄", "l̥", "l̥̄",
}

var sinhalaSidath = []string{
	"a", "ā", "i", "ī", "u", "ū", "e", "ē", "o", "ō",
	"k", "g", "j", "ṭ", "ḍ", "ṇ", "t", "d", "n", "p", "b", "m",
	"y", "r", "l", "v", "s", "h", "ḷ",
	"ṁ", "ṃ",
}

// Grantha and loan letters excluded.
var tamilCore = []string{
	"a", "ā", "i", "ī", "u", "ū", "e", "ē", "ai", "o", "ō", "au",
	"ḥ",
	"k", "ṅ", "c", "ñ", "ṭ", "ṇ",
	"t", "n", "p", "m", "y", "r",
	"l", "v", "ḻ", "ḷ", "ṟ", "ṉ",
}

// Short e and o are left out: long forms are written ē and ō.
var devanagariCore = []string{
	"a", "ā", "i", "ī", "u", "ū",
	"ṛ", "r̥", "ṝ", "r̥̄", "l̥", "l̥̄",
	"ē", "ai", "ō", "au",
	"ṃ", "ṁ", "ḥ",
	"k", "kh", "g", "gh", "ṅ",
	"c", "ch", "j", "jh", "ñ",
	"ṭ", "ṭh", "ḍ", "ḍh", "ṇ",
	"t", "th", "d", "dh", "n",
	"p", "ph", "b", "bh", "m",
	"y", "r", "l", "v",
	"ś", "ṣ", "s", "h",
}

// Variants lists the alphabet subsets of each script. The first variant of a
// script is its default.
var Variants = map[Script][]Variant{
	Sinhala: {
		newVariant(Sinhala, "nie"),
		newVariant(Sinhala, "amishra", sinhalaAmishra...),
		newVariant(Sinhala, "mishra", sinhalaMishra...),
		newVariant(Sinhala, "sidath", sinhalaSidath...),
	},
	Tamil: {
		newVariant(Tamil, "extended"),
		newVariant(Tamil, "core", tamilCore...),
	},
	Devanagari: {
		newVariant(Devanagari, "extended"),
		newVariant(Devanagari, "core", devanagariCore...),
	},
}

// LookupVariant returns the variant of script called name.
func LookupVariant(script Script, name string) (Variant, bool) {
	for _, v := range Variants[script] {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
