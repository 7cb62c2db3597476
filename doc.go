// Package branchbound is an exact combinatorial-optimization toolkit built around a
// generic branch-and-bound search engine with pluggable problem formulations.
//
// 🚀 What is branchbound?
//
//	A deterministic, dependency-light library that brings together:
//		• Engine core: open-node frontier, incumbent protocol, sound pruning
//		• Node tree: inherited variable fixings replayed from parent links
//		• Pluggable capabilities: Relaxation, Brancher, Repairer interfaces
//		• Exploration policies: depth-first, breadth-first, best-first
//		• Anytime budgets: node-count and wall-clock limits per run
//		• Parallel search: shared-frontier workers with a serialized incumbent
//		• Reference formulation: 0/1 knapsack with a fractional relaxation
//
// ✨ Why choose branchbound?
//
//   - Correct by construction – pruning never discards a subtree that could
//     still improve on the incumbent
//   - Deterministic – fixed branching and tie-break orders, seedable instances
//   - Extensible – swap in your own relaxation, branching rule, or repair
//     heuristic without touching the search loop
//
// Under the hood, everything is organized under two subpackages:
//
//	bnb/      — the search engine: Node, frontier policies, Options, Solve
//	knapsack/ — worked 0/1 knapsack formulation + random instance generator
//
// Quick sketch of one engine iteration:
//
//	pop → solve relaxation → repair → update incumbent → prune? → branch
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/branchbound
package branchbound
