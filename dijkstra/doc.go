// Package dijkstra implements single-source shortest paths over a weighted
// core.Adjacency with non-negative arc weights.
//
// Overview:
//
//   - The frontier is a plain slice scanned linearly for its minimum on every
//     step instead of a binary heap. At the scale of the evolution graph (low
//     thousands of nodes) this costs O(V²) without changing any result.
//   - Ties on distance are broken by frontier insertion order, and relaxation
//     only replaces a predecessor on a strictly shorter distance, so the
//     reconstructed path is reproducible.
//   - With WithTarget the search stops as soon as the target is settled.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
//
// Options:
//
//   - Source(id):             required starting node.
//   - WithTarget(id):         stop once id is settled.
//   - WithReturnPath():       return the predecessor map.
//   - WithMaxDistance(x):     do not settle nodes farther than x (x ≥ 0).
//   - WithInfEdgeThreshold(t): treat arcs with weight ≥ t as impassable (t > 0).
//
// Errors (sentinel):
//
//   - ErrEmptySource      if no Source was given.
//   - ErrNilAdjacency     if the adjacency pointer is nil.
//   - ErrNegativeWeight   if any arc has a negative weight.
//   - ErrBadMaxDistance   if MaxDistance < 0.
//   - ErrBadInfThreshold  if InfEdgeThreshold ≤ 0.
//
// A source that is not in the graph is not an error: every node is simply
// unreachable.
//
// Cancellation:
//
//	There is no context parameter; callers race the call externally.
package dijkstra
