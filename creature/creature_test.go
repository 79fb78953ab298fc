package creature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/evopath/creature"
)

func TestParseLocale(t *testing.T) {
	cases := map[string]creature.Locale{
		"":        creature.Default,
		"ja":      creature.Japanese,
		"ja-JP":   creature.Japanese,
		"en":      creature.English,
		"en-US":   creature.English,
		"zh":      creature.Default,
		"zh-Hant": creature.Default,
		"fr":      creature.Default,
		"!!":      creature.Default,
	}
	for in, want := range cases {
		assert.Equal(t, want, creature.ParseLocale(in), "ParseLocale(%q)", in)
	}
}

func TestLocale_String(t *testing.T) {
	assert.Equal(t, "ja", creature.Japanese.String())
	assert.Equal(t, "en", creature.English.String())
	assert.Equal(t, "zh", creature.Default.String())
}

// TestDisplayName walks the fallback chain of each locale.
func TestDisplayName(t *testing.T) {
	full := creature.Record{Slug: "agumon", Name: "亚古兽", NameJA: "アグモン", NameEN: "Agumon"}
	untranslated := creature.Record{Slug: "gabumon", Name: "ガブモン", NameJA: "ガブモン"}
	primaryOnly := creature.Record{Slug: "patamon", Name: "巴达兽"}

	cases := []struct {
		name string
		rec  creature.Record
		loc  creature.Locale
		want string
	}{
		{"JA/Full", full, creature.Japanese, "アグモン"},
		{"EN/Full", full, creature.English, "Agumon"},
		{"Default/Full", full, creature.Default, "亚古兽"},
		{"JA/PrimaryOnly", primaryOnly, creature.Japanese, "巴达兽"},
		{"EN/PrimaryOnly", primaryOnly, creature.English, "巴达兽"},
		{"EN/UntranslatedPrimarySkipped", untranslated, creature.English, "gabumon"},
		{"Default/UntranslatedPrimarySkipped", untranslated, creature.Default, "gabumon"},
		{"JA/SlugOnly", creature.Record{Slug: "x"}, creature.Japanese, "x"},
		{"Default/ENOnly", creature.Record{Slug: "y", NameEN: "Why"}, creature.Default, "Why"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, creature.DisplayName(tc.rec, tc.loc))
		})
	}
}

// TestDisplayName_JapaneseOnlyUnderEnglish ensures a record carrying only a
// Japanese name never renders as the empty string in the English slot.
func TestDisplayName_JapaneseOnlyUnderEnglish(t *testing.T) {
	rec := creature.Record{NameJA: "テリアモン"}
	assert.Equal(t, "テリアモン", creature.DisplayName(rec, creature.English))
	assert.Equal(t, "テリアモン", creature.DisplayName(rec, creature.Default))
}
