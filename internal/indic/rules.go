package indic

import (
	"regexp"
	"strings"
)

// Tier decides whether a rule can be switched off by the caller.
type Tier int

const (
	// Mandatory rules always run, before any optional rule.
	Mandatory Tier = iota
	// Optional rules run only when ligatures are requested.
	Optional
)

func (t Tier) String() string {
	if t == Mandatory {
		return "mandatory"
	}
	return "optional"
}

// Rule is one global rewrite over a rendered word.
type Rule struct {
	Name        string
	Tier        Tier
	literal     string
	pattern     *regexp.Regexp
	replacement string
}

// Literal returns a rule replacing every occurrence of from with to.
func Literal(name string, tier Tier, from, to string) Rule {
	return Rule{Name: name, Tier: tier, literal: from, replacement: to}
}

// Pattern returns a rule replacing every match of expr with replacement,
// which may reference groups as ${1}. It panics if expr does not compile.
func Pattern(name string, tier Tier, expr, replacement string) Rule {
	return Rule{Name: name, Tier: tier, pattern: regexp.MustCompile(expr), replacement: replacement}
}

// Apply rewrites text. A rule that matches nothing returns text unchanged.
func (r Rule) Apply(text string) string {
	if r.pattern != nil {
		return r.pattern.ReplaceAllString(text, r.replacement)
	}
	if r.literal == "" {
		return text
	}
	return strings.ReplaceAll(text, r.literal, r.replacement)
}

// Chain is an ordered list of rules. Each rule sees the output of the one
// before it.
type Chain []Rule

// Apply runs the mandatory rules, then the optional ones when optional is
// true. Relative order inside each tier is preserved.
func (c Chain) Apply(text string, optional bool) string {
	for _, r := range c {
		if r.Tier == Mandatory {
			text = r.Apply(text)
		}
	}
	if !optional {
		return text
	}
	for _, r := range c {
		if r.Tier == Optional {
			text = r.Apply(text)
		}
	}
	return text
}

const (
	sinhalaConsonant = `[\x{0D9A}-\x{0DC6}]`
	sinhalaConsGroup = `(` + sinhalaConsonant + `)`

	alLakuna = "\u0DCA"
	ra       = "\u0DBB"
	ya       = "\u0DBA"
)

// stacked joins c1 and c2 into a stacked conjunct.
func stacked(name string, c1, c2 string) Rule {
	return Literal(name, Optional, c1+alLakuna+c2, c1+alLakuna+ZWJ+c2)
}

// SinhalaRules realizes classical Sinhala conjunct orthography on a whole
// rendered word. The order is significant.
var SinhalaRules = Chain{
	// rakārāṁśaya: ක්ර -> ක්‍ර. Matches from al-lakuna so every ර in a chain
	// like ක්ර්ර is rewritten in one pass.
	Literal("rakaransaya", Mandatory, alLakuna+ra, alLakuna+ZWJ+ra),
	// yaṁśaya: ක්ය -> ක්‍ය
	Literal("yansaya", Mandatory, alLakuna+ya, alLakuna+ZWJ+ya),
	// ජ්ඤ -> ඥ
	Literal("jña", Mandatory, "\u0DA2"+alLakuna+"\u0DA4", "\u0DA5"),

	// rēphaya: ර්ම -> ර්‍ම
	Pattern("rephaya", Optional,
		ra+alLakuna+sinhalaConsGroup,
		ra+alLakuna+ZWJ+"${1}"),

	stacked("kṣa", "\u0D9A", "\u0DC2"),
	stacked("gdha", "\u0D9C", "\u0DB0"),
	stacked("ndha", "\u0DB1", "\u0DB0"),
	stacked("tva", "\u0DAD", "\u0DC0"),
	stacked("nda", "\u0DB1", "\u0DAF"),
	stacked("ttha", "\u0DAD", "\u0DAE"),
	stacked("dva", "\u0DAF", "\u0DC0"),
	stacked("ddha", "\u0DAF", "\u0DB0"),
	stacked("ṭṭha", "\u0DA7", "\u0DA8"),
	stacked("ñca", "\u0DA4", "\u0DA0"),
}

// DefaultRules returns the word-level rule chain of every script that has one.
func DefaultRules() map[Script]Chain {
	return map[Script]Chain{
		Sinhala: SinhalaRules,
	}
}

// PostProcess applies the default word-level rules of script to text.
// Scripts without rules return text unchanged.
func PostProcess(script Script, text string, ligatures bool) string {
	return DefaultRules()[script].Apply(text, ligatures)
}
