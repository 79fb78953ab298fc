// Package lookup builds the name → record index used to resolve creature
// names across languages, and resolves raw evolution-target names against it.
//
// Collision policy: every normalized key maps to at most one record, and the
// first writer wins. Records earlier in the input slice therefore own any key
// they share with later records. Output is deterministic for a given input.
package lookup

import (
	"sort"

	"github.com/katalvlaran/evopath/creature"
	"github.com/katalvlaran/evopath/normalize"
)

// Index maps a normalized name key to the record that owns it.
type Index map[string]*creature.Record

// Relation is one resolved (or unresolved) evolution target.
// Match is nil when Raw did not resolve; that is ordinary data, not a failure.
type Relation struct {
	Raw   string
	Match *creature.Record
}

// Build indexes every record under its slug, primary name, localized names
// and aliases. The returned map is fresh on every call; records is not
// modified, but the index points into it.
//
// Complexity: O(R·A) where A is the number of names per record.
func Build(records []creature.Record) Index {
	idx := make(Index, len(records)*4)
	for i := range records {
		rec := &records[i]
		for _, cand := range candidates(rec) {
			if cand == "" {
				continue
			}
			key := normalize.Key(cand)
			if key == "" {
				continue
			}
			if _, taken := idx[key]; taken {
				continue
			}
			idx[key] = rec
		}
	}

	return idx
}

// candidates lists the name variants of rec in binding order.
func candidates(rec *creature.Record) []string {
	out := make([]string, 0, 4+len(rec.Aliases))
	out = append(out, rec.Slug, rec.Name, rec.NameJA, rec.NameEN)

	return append(out, rec.Aliases...)
}

// Lookup normalizes name and returns its record, if any.
func (idx Index) Lookup(name string) (*creature.Record, bool) {
	key := normalize.Key(name)
	if key == "" {
		return nil, false
	}
	rec, ok := idx[key]

	return rec, ok
}

// Keys returns every key in ascending order.
func (idx Index) Keys() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// ResolveRelations resolves each raw name against idx, preserving input order.
// Nil or empty input yields an empty, non-nil slice.
func ResolveRelations(names []string, idx Index) []Relation {
	out := make([]Relation, 0, len(names))
	for _, raw := range names {
		rel := Relation{Raw: raw}
		if rec, ok := idx.Lookup(raw); ok {
			rel.Match = rec
		}
		out = append(out, rel)
	}

	return out
}

// Unresolved returns the raw names in rels that did not resolve.
func Unresolved(rels []Relation) []string {
	var out []string
	for _, r := range rels {
		if r.Match == nil {
			out = append(out, r.Raw)
		}
	}

	return out
}
