// Package dataset reads the flat files the CLI plans over: a YAML roster of
// creatures and a JSON list of evolution edges.
//
// Loaders validate shape only. Whether a name resolves, or whether an edge
// points at a known creature, is decided later by lookup and planner.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evopath/core"
	"github.com/katalvlaran/evopath/creature"
	"github.com/katalvlaran/evopath/lookup"
)

// Sentinel errors.
var (
	// ErrMissingSlug indicates a roster record without a slug.
	ErrMissingSlug = errors.New("dataset: record has no slug")

	// ErrDuplicateSlug indicates two roster records with the same slug.
	ErrDuplicateSlug = errors.New("dataset: duplicate slug")

	// ErrInvalidJSON indicates an edge file that is not valid JSON.
	ErrInvalidJSON = errors.New("dataset: invalid JSON")

	// ErrInvalidYAML indicates a roster file that yaml.v3 rejects.
	ErrInvalidYAML = errors.New("dataset: invalid YAML")
)

type rosterFile struct {
	Creatures []creature.Record `yaml:"creatures"`
}

// ParseRoster decodes a `creatures:` YAML document. Record order is kept,
// since it decides lookup collisions.
func ParseRoster(data []byte) ([]creature.Record, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	seen := make(map[string]int, len(f.Creatures))
	for i, rec := range f.Creatures {
		if rec.Slug == "" {
			return nil, fmt.Errorf("%w: entry %d (%q)", ErrMissingSlug, i, rec.Name)
		}
		if j, dup := seen[rec.Slug]; dup {
			return nil, fmt.Errorf("%w: %q at entries %d and %d", ErrDuplicateSlug, rec.Slug, j, i)
		}
		seen[rec.Slug] = i
	}

	return f.Creatures, nil
}

// FlattenEdges builds the global edge list from every record's EvolvesTo.
// Resolved targets use the target slug; unresolved ones keep the raw name.
func FlattenEdges(records []creature.Record, idx lookup.Index) []core.EvolutionEdge {
	var edges []core.EvolutionEdge
	for _, rec := range records {
		for _, rel := range lookup.ResolveRelations(rec.EvolvesTo, idx) {
			to := rel.Raw
			if rel.Match != nil {
				to = rel.Match.Slug
			}
			edges = append(edges, core.NewEdge(rec.Slug, to))
		}
	}

	return edges
}

// LoadFile reads path, wrapping any error with it.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return data, nil
}

// LoadRoster reads and parses a roster file.
func LoadRoster(path string) ([]creature.Record, error) {
	data, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	recs, err := ParseRoster(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// LoadEdges reads and parses an edge file.
func LoadEdges(path string) ([]core.EvolutionEdge, error) {
	data, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	edges, err := ParseEdges(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return edges, nil
}
