// Package neighborhood builds the one-hop evolution graph shown next to a
// single creature.
//
// The builder works purely from the raw predecessor/successor names handed to
// it and never consults the roster. Unresolved names therefore still render,
// as placeholder nodes with synthetic ids. It is a shape generator for
// lightweight visualization, not an authoritative graph: every edge carries
// the generic "evolution" method, no conditions, and confidence 1.
//
// SyntheticID deliberately differs from normalize.Key. Two raw names mapping
// to the same synthetic id are not merged; callers must tolerate
// duplicate-looking nodes.
package neighborhood

import (
	"strings"

	"github.com/katalvlaran/evopath/core"
)

// Role tells a renderer where a node sits relative to the center.
type Role string

const (
	RoleCenter      Role = "center"
	RolePredecessor Role = "predecessor"
	RoleSuccessor   Role = "successor"
)

// Center describes the creature the neighborhood is built around.
type Center struct {
	Slug      string
	Name      string
	Stage     string
	Attribute string
}

// Node is one renderable vertex.
type Node struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Role      Role   `json:"role"`
	Stage     string `json:"stage,omitempty"`
	Attribute string `json:"attribute,omitempty"`
}

// Graph is the renderable neighborhood of CenterSlug.
type Graph struct {
	CenterSlug string               `json:"center"`
	Nodes      []Node               `json:"nodes"`
	Edges      []core.EvolutionEdge `json:"edges"`
}

// Build returns the center node followed by one node per predecessor and per
// successor, in input order, with edges predecessor→center and
// center→successor.
func Build(center Center, predecessors, successors []string) Graph {
	g := Graph{
		CenterSlug: center.Slug,
		Nodes:      make([]Node, 0, 1+len(predecessors)+len(successors)),
		Edges:      make([]core.EvolutionEdge, 0, len(predecessors)+len(successors)),
	}
	g.Nodes = append(g.Nodes, Node{
		ID:        center.Slug,
		Label:     center.Name,
		Role:      RoleCenter,
		Stage:     center.Stage,
		Attribute: center.Attribute,
	})
	for _, name := range predecessors {
		id := SyntheticID(name)
		g.Nodes = append(g.Nodes, Node{ID: id, Label: name, Role: RolePredecessor})
		g.Edges = append(g.Edges, core.NewEdge(id, center.Slug))
	}
	for _, name := range successors {
		id := SyntheticID(name)
		g.Nodes = append(g.Nodes, Node{ID: id, Label: name, Role: RoleSuccessor})
		g.Edges = append(g.Edges, core.NewEdge(center.Slug, id))
	}

	return g
}

// ShouldShowGraph reports whether there is anything to draw.
func ShouldShowGraph(predecessors, successors []string) bool {
	return len(predecessors) > 0 || len(successors) > 0
}

// SyntheticID lower-cases name, replaces each run of characters outside
// [a-z0-9], Hiragana, Katakana and CJK ideographs with one hyphen, and trims
// hyphens at both ends.
func SyntheticID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pending := false
	for _, r := range strings.ToLower(name) {
		if keep(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}

// keep reports whether r survives slugification.
func keep(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana, incl. the ー prolonged sound mark
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	default:
		return false
	}
}
