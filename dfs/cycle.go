package dfs

import (
	"sort"
	"strings"

	"github.com/katalvlaran/evopath/core"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// detector carries the DFS state of one DetectCycles call.
type detector struct {
	adj    *core.Adjacency
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

// DetectCycles reports whether adj contains a directed cycle and returns every
// distinct cycle found by back-edges, each closed ([a, b, a]) and in canonical
// rotation. A nil adjacency is cycle-free.
func DetectCycles(adj *core.Adjacency) (bool, [][]string) {
	if adj == nil {
		return false, nil
	}
	d := &detector{
		adj:   adj,
		state: make(map[string]int, adj.NodeCount()),
		seen:  make(map[string]struct{}),
	}
	for _, v := range adj.Nodes() {
		if d.state[v] == White {
			d.visit(v)
		}
	}
	if len(d.cycles) == 0 {
		return false, nil
	}
	sort.Slice(d.cycles, func(i, j int) bool {
		return strings.Join(d.cycles[i], ",") < strings.Join(d.cycles[j], ",")
	})

	return true, d.cycles
}

func (d *detector) visit(id string) {
	d.state[id] = Gray
	d.path = append(d.path, id)

	for _, a := range d.adj.Arcs(id) {
		switch d.state[a.To] {
		case White:
			d.visit(a.To)
		case Gray:
			d.record(a.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
}

// record stores the cycle closing at start, the Gray node on the stack.
func (d *detector) record(start string) {
	idx := indexOf(d.path, start)
	if idx < 0 {
		return
	}
	canon := minimalRotation(d.path[idx:])
	canon = append(canon, canon[0])
	sig := strings.Join(canon, ",")
	if _, dup := d.seen[sig]; dup {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, canon)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// minimalRotation returns a copy of s rotated to its lexicographically
// smallest form.
func minimalRotation(s []string) []string {
	n := len(s)
	best := 0
	for k := 1; k < n; k++ {
		for i := 0; i < n; i++ {
			a, b := s[(k+i)%n], s[(best+i)%n]
			if a != b {
				if a < b {
					best = k
				}
				break
			}
		}
	}
	out := make([]string, n, n+1)
	for i := 0; i < n; i++ {
		out[i] = s[(best+i)%n]
	}

	return out
}
