// Package core defines the evolution-graph primitives shared by the planners:
// EvolutionEdge, the closed Conditions record, edge weighting, and the
// read-only Adjacency map built once per query.
//
// What
//
//   - EvolutionEdge: directed "From can become To" relation with an optional
//     gate (Conditions), provenance notes and a confidence in [0,1].
//   - Conditions: one optional field per ConditionKind (rank, HP, ATK, DEF,
//     SPD, personality, item, time of day). Has and Count switch over the
//     closed kind set, so adding a kind without wiring it fails the
//     exhaustiveness test in this package.
//   - Adjacency: slug → []Arc{To, Weight}, arcs kept in edge input order.
//
// Weighting
//
//	UnitWeight(e) = 1                       (minSteps)
//	GateWeight(e) = 1 + 0.2 × e.Conditions.Count()   (minGate)
//
// Only the presence of a condition counts, never its value, so malformed
// threshold values cannot corrupt the cost.
//
// Determinism
//
//	Arcs preserve input order and Nodes() is sorted, so every traversal built
//	on Adjacency is reproducible for identical input.
//
// Concurrency
//
//	Adjacency is immutable after NewAdjacency returns and may be shared
//	read-only between goroutines. There are no locks in this package.
package core
