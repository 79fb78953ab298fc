// Package creature defines the roster record consumed by the lookup and
// planning packages, together with locale-aware display-name selection.
//
// Records are loaded once per session by an external reader (see package
// dataset) and are never mutated by evopath.
package creature

import (
	"strings"

	"golang.org/x/text/language"
)

// Record is one creature in the roster.
//
// Slug is the stable, language-independent identifier. Name is the primary
// (default/Chinese) display name; NameJA and NameEN are the localized names.
// Any of the names may be empty.
type Record struct {
	Slug      string   `yaml:"slug" json:"slug"`
	Name      string   `yaml:"name" json:"name,omitempty"`
	NameJA    string   `yaml:"name_ja" json:"name_ja,omitempty"`
	NameEN    string   `yaml:"name_en" json:"name_en,omitempty"`
	Aliases   []string `yaml:"aliases" json:"aliases,omitempty"`
	Stage     string   `yaml:"stage" json:"stage,omitempty"`
	Attribute string   `yaml:"attribute" json:"attribute,omitempty"`

	// EvolvesFrom and EvolvesTo are raw predecessor/successor names exactly
	// as they appear in the source data. They may or may not resolve.
	EvolvesFrom []string `yaml:"evolves_from" json:"evolves_from,omitempty"`
	EvolvesTo   []string `yaml:"evolves_to" json:"evolves_to,omitempty"`
}

// Locale selects a display-name fallback chain.
type Locale int

const (
	// Default covers the primary (Chinese) site and any unrecognized locale.
	Default Locale = iota
	// Japanese prefers NameJA.
	Japanese
	// English prefers NameEN.
	English
)

// String returns the base language code of the locale.
func (l Locale) String() string {
	switch l {
	case Japanese:
		return "ja"
	case English:
		return "en"
	default:
		return "zh"
	}
}

// ParseLocale maps a BCP 47 tag ("ja", "en-US", "zh-Hant") to a Locale.
// Empty or unparsable tags map to Default.
func ParseLocale(tag string) Locale {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Default
	}
	t, err := language.Parse(tag)
	if err != nil {
		return Default
	}
	base, _ := t.Base()
	switch base.String() {
	case "ja":
		return Japanese
	case "en":
		return English
	default:
		return Default
	}
}

// DisplayName picks the name to show for r under loc.
//
//	Japanese: NameJA → Name → NameEN → Slug
//	English:  NameEN → Name (if ≠ NameJA) → Slug → Name → NameJA
//	Default:  Name (if ≠ NameJA) → NameEN → Slug → NameJA
//
// The "≠ NameJA" guards keep untranslated Japanese text out of the English and
// default slots while a better candidate exists. Slug is the final fallback for
// every well-formed record.
func DisplayName(r Record, loc Locale) string {
	var chain []string
	switch loc {
	case Japanese:
		chain = []string{r.NameJA, r.Name, r.NameEN, r.Slug}
	case English:
		chain = []string{r.NameEN, distinctFrom(r.Name, r.NameJA), r.Slug, r.Name, r.NameJA}
	default:
		chain = []string{distinctFrom(r.Name, r.NameJA), r.NameEN, r.Slug, r.NameJA}
	}
	for _, name := range chain {
		if name != "" {
			return name
		}
	}

	return r.Slug
}

// distinctFrom returns name unless it equals other.
func distinctFrom(name, other string) string {
	if name == other {
		return ""
	}

	return name
}
