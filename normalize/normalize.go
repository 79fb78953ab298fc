// Package normalize canonicalizes creature display names and identifiers
// into lookup keys.
//
// What
//
//   - Lower-case fold.
//   - U+3000 (ideographic space) becomes an ASCII space.
//   - Runs of whitespace collapse to a single space.
//   - Full-width parentheses （） become ().
//   - U+2019 (right single quotation mark) and U+FF07 (full-width apostrophe) become '.
//   - Leading and trailing whitespace is trimmed.
//
// Coverage is deliberately narrow: Latin, kana/kanji and CJK punctuation as they
// appear in the creature data. No NFC/NFKC or width folding beyond the list above.
//
// Key is idempotent: Key(Key(s)) == Key(s).
package normalize

import "strings"

// punctuation maps the full-width and typographic variants onto ASCII.
var punctuation = strings.NewReplacer(
	"（", "(",
	"）", ")",
	"’", "'",
	"＇", "'",
)

// Key returns the lookup key for raw. The empty string maps to itself.
//
// Complexity: O(len(raw)).
func Key(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, "　", " ")
	// Fields splits on unicode.IsSpace, so joining collapses every run.
	s = strings.Join(strings.Fields(s), " ")
	s = punctuation.Replace(s)

	return strings.TrimSpace(s)
}
