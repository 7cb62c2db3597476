// Package bnb provides a generic branch-and-bound search engine for
// combinatorial and integer optimization problems.
//
// The engine is problem-agnostic: it drives a tree of SearchNode fixings and
// delegates all problem knowledge to three capabilities injected at Solve
// time:
//
//   - Relaxation — given the variable fixings accumulated on a node's path,
//     computes a bound and a (possibly fractional) partial assignment of the
//     relaxed subproblem. Infeasibility is signaled with ErrInfeasible.
//
//   - Brancher — selects one branching variable from a fractional partial
//     assignment and produces two child nodes with mutually exclusive,
//     jointly exhaustive fixings. No children means the assignment was
//     integral (terminal node).
//
//   - Repairer — rounds a partial assignment into a feasible integral
//     Solution, or reports that none can be derived.
//
// The engine maintains the open-node frontier (depth-first, breadth-first,
// or best-first removal), the incumbent (best feasible solution found so
// far), and the pruning rule: a node whose relaxation bound cannot strictly
// beat the incumbent is discarded together with its entire subtree. With an
// absent incumbent nothing is ever pruned, and a bound that exactly ties the
// incumbent is still branched — pruning stays conservative so optimality
// never hinges on floating-point coincidence.
//
// Budgets (node count, wall clock) make every run an anytime computation:
// when a budget fires the best incumbent found so far is returned with
// Result.Complete == false. With Options.Workers > 1 the search runs on a
// shared frontier across goroutines; the incumbent is the only mutable
// shared state and all its reads and updates are serialized.
//
// Complexity:
//
//   - Worst case exponential in the number of branching variables (exact
//     search); practical speed comes from bound quality and pruning.
//   - Per node: one Relaxation.Solve + O(depth) fixing replay +
//     O(log frontier) for BestFirst frontier maintenance.
//   - Memory: O(frontier) node handles; ancestors stay reachable exactly as
//     long as a descendant is open.
//
// See package knapsack for a complete worked formulation (fractional
// relaxation, 0/1 branching, floor repair) and runnable examples.
package bnb
