package planner

import (
	"strings"

	"github.com/katalvlaran/evopath/bfs"
	"github.com/katalvlaran/evopath/core"
	"github.com/katalvlaran/evopath/dijkstra"
)

// Find returns up to maxPaths plans from start to goal over edges.
// See the package documentation for the behavior of each Mode.
func Find(start, goal string, edges []core.EvolutionEdge, mode Mode, maxPaths int) []Plan {
	if maxPaths <= 0 {
		return []Plan{}
	}
	switch mode {
	case MinSteps:
		return minSteps(start, goal, edges, maxPaths)
	case MinGate:
		return minGate(start, goal, edges, maxPaths)
	default:
		return []Plan{}
	}
}

func minSteps(start, goal string, edges []core.EvolutionEdge, maxPaths int) []Plan {
	adj := core.NewAdjacency(edges, core.UnitWeight)
	// adj is non-nil and no options are passed, so no error is possible.
	paths, _ := bfs.ShortestPaths(adj, start, goal, maxPaths)

	out := make([]Plan, 0, len(paths))
	for _, p := range paths {
		steps := len(p) - 1
		out = append(out, Plan{Nodes: p, Steps: steps, Score: float64(steps)})
	}

	return out
}

func minGate(start, goal string, edges []core.EvolutionEdge, maxPaths int) []Plan {
	adj := core.NewAdjacency(edges, core.GateWeight)
	out := make([]Plan, 0, 1)
	excluded := make(map[string]struct{}, maxPaths)

	for len(out) < maxPaths {
		dist, prev, err := dijkstra.Dijkstra(adj,
			dijkstra.Source(start),
			dijkstra.WithTarget(goal),
			dijkstra.WithReturnPath(),
		)
		if err != nil {
			break
		}
		path := dijkstra.PathTo(prev, start, goal)
		if len(path) < 2 {
			break
		}
		key := strings.Join(path, "\x00")
		if _, seen := excluded[key]; seen {
			break
		}
		excluded[key] = struct{}{}
		out = append(out, Plan{Nodes: path, Steps: len(path) - 1, Score: dist[goal]})
	}

	return out
}
