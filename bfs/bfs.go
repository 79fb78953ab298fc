package bfs

import "github.com/katalvlaran/evopath/core"

// walker encapsulates mutable enumeration state.
type walker struct {
	adj      *core.Adjacency
	opts     Options
	goal     string
	limit    int
	queue    [][]string
	best     map[string]int // node → smallest depth it was entered at
	shortest int            // edges in the first completed path, -1 until found
	found    [][]string
}

// ShortestPaths returns up to k fewest-step paths from start to goal, each a
// node sequence of length ≥ 2. An unreachable goal, start == goal or k ≤ 0
// yields an empty result, not an error.
func ShortestPaths(adj *core.Adjacency, start, goal string, k int, opts ...Option) ([][]string, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if k <= 0 || !adj.HasNode(start) {
		return nil, nil
	}

	w := &walker{
		adj:      adj,
		opts:     o,
		goal:     goal,
		limit:    k,
		queue:    [][]string{{start}},
		best:     map[string]int{start: 0},
		shortest: -1,
	}
	w.loop()

	return w.found, nil
}

// loop drains the queue until it empties or the limit is reached.
func (w *walker) loop() {
	for len(w.queue) > 0 && len(w.found) < w.limit {
		path := w.queue[0]
		w.queue = w.queue[1:]
		d := len(path) - 1

		if w.shortest >= 0 && d > w.shortest {
			continue
		}
		last := path[d]
		if last == w.goal && d > 0 {
			w.shortest = d
			w.found = append(w.found, path)
			continue
		}
		w.extend(path, last, d)
	}
}

// extend enqueues path+next for every admissible arc out of last.
func (w *walker) extend(path []string, last string, d int) {
	next := d + 1
	if w.shortest >= 0 && next > w.shortest {
		return
	}
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	seen := make(map[string]struct{}, len(w.adj.Arcs(last)))
	for _, arc := range w.adj.Arcs(last) {
		if _, dup := seen[arc.To]; dup {
			continue
		}
		seen[arc.To] = struct{}{}
		if !w.opts.FilterNeighbor(last, arc.To) {
			continue
		}
		if b, ok := w.best[arc.To]; ok && next > b {
			continue
		}
		w.best[arc.To] = next

		ext := make([]string, len(path), len(path)+1)
		copy(ext, path)
		w.queue = append(w.queue, append(ext, arc.To))
	}
}
