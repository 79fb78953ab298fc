package lookup

import (
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/katalvlaran/evopath/creature"
	"github.com/katalvlaran/evopath/normalize"
)

// Suggestion is a near-miss index key for an unresolved name.
type Suggestion struct {
	Key      string
	Record   *creature.Record
	Distance int
}

// Suggest returns up to limit index keys within edit distance of name,
// closest first, ties broken by key. A name that resolves exactly yields a
// single zero-distance suggestion. Keys shorter than three runes are only
// matched exactly.
//
// Complexity: O(K·L²) over K keys of length L.
func Suggest(name string, idx Index, limit int) []Suggestion {
	key := normalize.Key(name)
	if key == "" || limit <= 0 {
		return nil
	}
	if rec, ok := idx[key]; ok {
		return []Suggestion{{Key: key, Record: rec, Distance: 0}}
	}
	if utf8.RuneCountInString(key) < 3 {
		return nil
	}

	var out []Suggestion
	for _, cand := range idx.Keys() {
		dist := levenshtein.ComputeDistance(key, cand)
		if dist > distanceLimit(utf8.RuneCountInString(cand)) {
			continue
		}
		out = append(out, Suggestion{Key: cand, Record: idx[cand], Distance: dist})
	}
	// Keys() is already sorted, so a stable sort on distance keeps key order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
