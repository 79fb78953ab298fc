// Package planner computes ranked evolution paths between two creatures.
//
// What
//
//   - Find builds a core.Adjacency once per call and dispatches on Mode:
//   - MinSteps: up to maxPaths fewest-step paths (package bfs). Score equals
//     the step count.
//   - MinGate:  cheapest path under core.GateWeight (1 + 0.2 per condition),
//     found with the linear-scan Dijkstra of package dijkstra.
//   - No reachable path, maxPaths ≤ 0 or an unknown mode yield an empty
//     result, never an error.
//
// MinGate diversity is best-effort
//
//	MinGate repeats the single-source search and keeps each new node sequence,
//	but the graph is never modified between rounds (no arc removal, no
//	deviation paths as in Yen's algorithm). An unchanged search finds the same
//	path again, so the loop stops at the first repeat and MinGate normally
//	returns exactly one plan regardless of maxPaths.
//
// Caller responsibilities
//
//	Find does not reject start == goal or empty endpoints; callers run
//	Validate first (PlanContext and PlanAll do). Find has no cancellation
//	point: PlanContext runs it on its own goroutine and returns ctx.Err() when
//	the context ends first. The abandoned search finishes in the background
//	and its result is dropped.
//
// Determinism
//
//	Identical edges and arguments produce identical plans, in the same order.
package planner
