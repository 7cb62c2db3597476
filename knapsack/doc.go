// Package knapsack is the worked reference formulation for the bnb engine:
// the 0/1 knapsack problem solved exactly by branch-and-bound over a
// fractional (continuous) relaxation.
//
// Formulation:
//
//	maximize   Σ pᵢ·xᵢ
//	subject to Σ wᵢ·xᵢ ≤ c,  xᵢ ∈ {0, 1}
//
// The three engine capabilities are instantiated as:
//
//   - Relaxation — the classic fractional knapsack: apply the node's fixings,
//     fail with bnb.ErrInfeasible when the fixed weight alone exceeds the
//     capacity, then fill the remaining capacity greedily by descending
//     profit/weight ratio; the first item that does not fully fit enters
//     fractionally. The ratio order is computed once per Problem, not per
//     node. The resulting profit dominates every integral completion, so the
//     bound is sound.
//
//   - Brancher — 0/1 branching on the single fractional variable of the
//     partial assignment (the greedy fill produces at most one). The 0-child
//     is returned first and the 1-child second, so depth-first exploration
//     dives into the "take the item" branch first.
//
//   - Repairer — floor rounding: truncate every fractional entry to 0.
//     Removing fractional weight can never violate the capacity, so the
//     rounded vector is always feasible (a valid, if weak, incumbent).
//
// Instances are immutable after New; Random generates reproducible test
// instances from a seed.
//
// Complexity per node: O(k) fixing application (k = fixings on the path) +
// O(n) greedy fill over the precomputed ratio order.
//
// Use Solve for the one-call wiring of all three capabilities:
//
//	p, _ := knapsack.New([]float64{60, 100, 120}, []float64{10, 20, 30}, 50)
//	res, _ := knapsack.Solve(p, bnb.DefaultOptions())
//	fmt.Println(res.Best.Objective) // 220
package knapsack
