// Package evopath plans evolution paths over a multilingual creature roster:
// who can become whom, in how many steps, and through how many gates.
//
// 🚀 What is evopath?
//
//	A small, deterministic planning core plus a CLI that brings together:
//		• Name normalization: one lookup key per spelling, across zh/ja/en
//		• Lookup index: names, localized names and aliases → roster record
//		• Relation resolution: raw evolution targets → records (or not)
//		• Neighborhood graph: one-hop predecessor/successor view
//		• Path planning: k shortest by steps (BFS), cheapest by gates (Dijkstra)
//
// Under the hood, everything is organized under these subpackages:
//
//	normalize/    - lookup key normalization
//	creature/     - roster record, locales, display-name fallback
//	lookup/       - name index, relation resolution, fuzzy suggestions
//	core/         - evolution edges, gate conditions, weighted adjacency
//	bfs/          - k shortest paths by edge count
//	dijkstra/     - single-source shortest paths over gate weights
//	dfs/          - cycle detection for dataset checks
//	neighborhood/ - renderable one-hop graph
//	planner/      - minSteps / minGate modes, context and batch helpers
//	history/      - recent-search store (memory, SQLite with -tags sqlite)
//	dataset/      - YAML roster and JSON edge loaders
//
// Quick ASCII example:
//
//	agumon ──► greymon ──► metalgreymon
//	   │                        ▲
//	   └──[rank 30, atk 120]────┘
//
//	minSteps scores the gated edge 1 and the chain 2.
//	minGate scores the gated edge 1 + 0.2·2 = 1.4 and the chain 2.0.
//
// Install:
//
//	go install github.com/katalvlaran/evopath/cmd/evopath@latest
package evopath
