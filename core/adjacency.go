package core

import "sort"

// gatePenalty is the extra cost of each condition kind set on an edge.
const gatePenalty = 0.2

// WeightFunc assigns a non-negative traversal cost to an edge.
type WeightFunc func(e EvolutionEdge) float64

// UnitWeight charges 1 per edge.
func UnitWeight(EvolutionEdge) float64 { return 1 }

// GateWeight charges 1 plus 0.2 per condition kind set on e.
func GateWeight(e EvolutionEdge) float64 {
	return 1 + gatePenalty*float64(e.Conditions.Count())
}

// Arc is one outgoing step of an Adjacency.
type Arc struct {
	To     string
	Weight float64
}

// Adjacency is the read-only slug → outgoing arcs map used by the planners.
type Adjacency struct {
	arcs  map[string][]Arc
	nodes map[string]struct{}
	edges int
}

// NewAdjacency builds the adjacency for edges, weighting each with w
// (UnitWeight when nil). Edges with an empty endpoint are skipped.
// Arcs keep edge input order; parallel edges are all kept.
//
// Complexity: O(E).
func NewAdjacency(edges []EvolutionEdge, w WeightFunc) *Adjacency {
	if w == nil {
		w = UnitWeight
	}
	adj := &Adjacency{
		arcs:  make(map[string][]Arc, len(edges)),
		nodes: make(map[string]struct{}, 2*len(edges)),
	}
	var e EvolutionEdge
	for _, e = range edges {
		if e.From == "" || e.To == "" {
			continue
		}
		adj.arcs[e.From] = append(adj.arcs[e.From], Arc{To: e.To, Weight: w(e)})
		adj.nodes[e.From] = struct{}{}
		adj.nodes[e.To] = struct{}{}
		adj.edges++
	}

	return adj
}

// Arcs returns the outgoing arcs of id. The slice must not be modified.
func (a *Adjacency) Arcs(id string) []Arc { return a.arcs[id] }

// HasNode reports whether id is an endpoint of any edge.
func (a *Adjacency) HasNode(id string) bool {
	_, ok := a.nodes[id]

	return ok
}

// Nodes returns every endpoint in ascending order.
func (a *Adjacency) Nodes() []string {
	out := make([]string, 0, len(a.nodes))
	for id := range a.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of distinct endpoints.
func (a *Adjacency) NodeCount() int { return len(a.nodes) }

// EdgeCount returns the number of arcs (parallel edges counted separately).
func (a *Adjacency) EdgeCount() int { return a.edges }
