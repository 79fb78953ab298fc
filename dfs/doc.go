// Package dfs detects directed cycles in a core.Adjacency.
//
// The path planners assume the evolution graph is forward-only. DetectCycles
// lets data tooling verify that assumption before a dataset ships: it runs a
// three-colour depth-first search (White unvisited, Gray on the stack, Black
// done) from every node in sorted order and records each back-edge as a
// cycle. Cycles are rotated so their smallest node comes first, closed by
// repeating that node, deduplicated and sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L²)   (C cycles of length L, rotation is quadratic)
//   - Memory: O(V)               (recursion stack + state map)
package dfs
