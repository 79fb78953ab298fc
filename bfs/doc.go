// Package bfs enumerates up to K fewest-step paths between two nodes of a
// core.Adjacency.
//
// What
//
//   - Breadth-first expansion over whole partial paths, not single vertices,
//     so several distinct shortest paths can be collected.
//   - A node may be re-entered when the new depth is equal to or smaller than
//     its best known depth. Equal-depth revisits are what keep alternative
//     shortest routes alive; deeper revisits are dropped, which also stops
//     cycles from looping.
//   - Once the first path to the goal is found its length becomes a ceiling:
//     longer partial paths are pruned and never extended.
//   - Parallel arcs to the same destination are expanded once per path, so
//     duplicate edges between two nodes never produce duplicate node sequences.
//
// Determinism
//
//	Arcs are visited in edge input order and the queue is FIFO, so the output
//	for identical input is identical.
//
// Complexity
//
//	Bounded by the number of shortest-path prefixes, O(K·L) paths of length L
//	in practice on the forward-only evolution graph.
//
// Cancellation
//
//	There is no context or cooperative yield point. Callers that need a
//	deadline race the call externally (see planner.PlanContext).
//
// Options
//
//   - WithMaxDepth(d):        never extend paths beyond d edges (d > 0).
//   - WithFilterNeighbor(fn): skip arcs for which fn(curr, next) is false.
//
// Errors
//
//   - ErrAdjacencyNil    if the adjacency pointer is nil.
//   - ErrOptionViolation for an invalid Option (e.g. negative depth).
package bfs
