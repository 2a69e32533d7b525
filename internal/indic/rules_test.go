package indic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinhalaRules(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		ligatures bool
		want      string
	}{
		{"rakaransaya", "ක්ර", false, "\u0D9A\u0DCA\u200D\u0DBB"},
		{"rakaransaya with sign", "ග්රී", false, "\u0D9C\u0DCA\u200D\u0DBB\u0DD3"},
		{"yansaya", "ස්ය", false, "\u0DC3\u0DCA\u200D\u0DBA"},
		{"jña", "ජ්ඤා", false, "\u0DA5\u0DCF"},
		{"rephaya off", "ර්ම", false, "\u0DBB\u0DCA\u0DB8"},
		{"rephaya on", "ර්ම", true, "\u0DBB\u0DCA\u200D\u0DB8"},
		{"stacked nda", "න්ද", true, "\u0DB1\u0DCA\u200D\u0DAF"},
		{"stacked ñca", "ඤ්ච", true, "\u0DA4\u0DCA\u200D\u0DA0"},
		{"stacked off", "න්ද", false, "\u0DB1\u0DCA\u0DAF"},
		{"untouched cluster", "ක්ත", true, "\u0D9A\u0DCA\u0DAD"},
		{"no virama", "කර", true, "\u0D9A\u0DBB"},
		{"chained rakaransaya", "\u0D9A\u0DCA\u0DBB\u0DCA\u0DBB", false, "\u0D9A\u0DCA\u200D\u0DBB\u0DCA\u200D\u0DBB"},
		{"chained yansaya", "\u0D9A\u0DCA\u0DBA\u0DCA\u0DBA", true, "\u0D9A\u0DCA\u200D\u0DBA\u0DCA\u200D\u0DBA"},
		{"empty", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SinhalaRules.Apply(tt.input, tt.ligatures))
		})
	}
}

func TestSinhalaRulesIdempotent(t *testing.T) {
	inputs := []string{
		"ක්ර",
		"ව්යා",
		"ධර්ම",
		"ක්ෂ",
		"ජ්ඤ",
		"බුද්ධ",
		"\u0D9A\u0DCA\u0DBB\u0DCA\u0DBB",
		"\u0D9A\u0DCA\u0DBA\u0DCA\u0DBA",
		"\u0DB4\u0DCA\u0DBB\u0DCA\u0DBB\u0DCA\u0DBA",
	}
	for _, in := range inputs {
		for _, lig := range []bool{false, true} {
			once := SinhalaRules.Apply(in, lig)
			assert.Equal(t, once, SinhalaRules.Apply(once, lig), "%q ligatures=%v", in, lig)
		}
	}
}

func TestSinhalaRulesJnaBeforeStacking(t *testing.T) {
	// ඥ has no virama left for any optional rule to pick up
	got := SinhalaRules.Apply("ජ්ඤ", true)
	assert.Equal(t, "ඥ", got)
	assert.NotContains(t, got, ZWJ)
}

func TestChainTierOrder(t *testing.T) {
	chain := Chain{
		Literal("second", Optional, "b", "c"),
		Literal("first", Mandatory, "a", "b"),
	}

	// the optional rule sees the mandatory output even though it is listed first
	assert.Equal(t, "c", chain.Apply("a", true))
	assert.Equal(t, "b", chain.Apply("a", false))
}

func TestRuleApply(t *testing.T) {
	assert.Equal(t, "xyz", Literal("noop", Mandatory, "", "q").Apply("xyz"))
	assert.Equal(t, "xyz", Literal("miss", Mandatory, "a", "b").Apply("xyz"))
	assert.Equal(t, "x-yz-w", Pattern("dash", Mandatory, `(\w)(\w)`, "${1}-${2}").Apply("xyzw"))
	assert.Panics(t, func() { Pattern("bad", Mandatory, `(`, "") })
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "mandatory", Mandatory.String())
	assert.Equal(t, "optional", Optional.String())
}

func TestPostProcess(t *testing.T) {
	assert.Equal(t, "\u0D9A\u0DCA\u200D\u0DC2", PostProcess(Sinhala, "ක්ෂ", true))
	assert.Equal(t, "क्ष", PostProcess(Devanagari, "क्ष", true))
	assert.Equal(t, "abc", PostProcess(Script("unknown"), "abc", true))
}
