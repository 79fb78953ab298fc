package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evopath/core"
)

// Dijkstra computes shortest distances from Options.Source over adj.
//
// Returns:
//
//   - dist: node → minimum distance; math.Inf(1) for unreachable nodes.
//   - prev: predecessor map when WithReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; the source
//     and unreachable nodes have no entry.
//   - err:  a sentinel error for invalid input.
func Dijkstra(adj *core.Adjacency, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if adj == nil {
		return nil, nil, ErrNilAdjacency
	}

	nodes := adj.Nodes()
	for _, u := range nodes {
		for _, a := range adj.Arcs(u) {
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	r := &runner{
		adj:     adj,
		options: cfg,
		dist:    make(map[string]float64, len(nodes)+1),
		prev:    make(map[string]string, len(nodes)),
		settled: make(map[string]bool, len(nodes)),
	}
	for _, v := range nodes {
		r.dist[v] = math.Inf(1)
	}
	r.dist[cfg.Source] = 0
	r.frontier = append(r.frontier, cfg.Source)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj      *core.Adjacency
	options  Options
	dist     map[string]float64
	prev     map[string]string
	settled  map[string]bool
	frontier []string // unsettled nodes with a finite tentative distance, in insertion order
}

// process settles frontier nodes in increasing distance order.
func (r *runner) process() {
	for len(r.frontier) > 0 {
		u := r.popMin()
		if r.dist[u] > r.options.MaxDistance {
			return
		}
		r.settled[u] = true
		if u == r.options.Target {
			return
		}
		r.relax(u)
	}
}

// popMin removes and returns the frontier node with the smallest distance.
// The earliest-inserted node wins ties.
func (r *runner) popMin() string {
	best := 0
	for i := 1; i < len(r.frontier); i++ {
		if r.dist[r.frontier[i]] < r.dist[r.frontier[best]] {
			best = i
		}
	}
	u := r.frontier[best]
	r.frontier = append(r.frontier[:best], r.frontier[best+1:]...)

	return u
}

// relax improves tentative distances of u's successors.
func (r *runner) relax(u string) {
	for _, a := range r.adj.Arcs(u) {
		if a.Weight >= r.options.InfEdgeThreshold || r.settled[a.To] {
			continue
		}
		nd := r.dist[u] + a.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		cur, known := r.dist[a.To]
		if known && nd >= cur {
			continue
		}
		if !known || math.IsInf(cur, 1) {
			r.frontier = append(r.frontier, a.To)
		}
		r.dist[a.To] = nd
		r.prev[a.To] = u
	}
}

// PathTo rebuilds the source→target node sequence from a predecessor map.
// It returns nil when target was not reached; a target equal to source
// yields the single-node path.
func PathTo(prev map[string]string, source, target string) []string {
	if target == source {
		return []string{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	var rev []string
	for cur := target; ; {
		rev = append(rev, cur)
		if cur == source {
			break
		}
		p, ok := prev[cur]
		if !ok || len(rev) > len(prev)+1 {
			return nil
		}
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
