// Package knapsack - one-call wiring of the engine capabilities.
package knapsack

import "github.com/katalvlaran/branchbound/bnb"

// Solve runs branch-and-bound on p with the package's reference capabilities
// (fractional relaxation, 0/1 brancher, floor repairer) under opts.
//
// For every valid instance the floor repair of the root relaxation is
// feasible, so Result.Best is non-nil whenever at least one node is solved;
// a zero-capacity instance yields the all-zero solution with objective 0.
//
// Errors: ErrNilProblem, plus everything bnb.Solve can return.
func Solve(p *Problem, opts bnb.Options) (bnb.Result, error) {
	if p == nil {
		return bnb.Result{}, ErrNilProblem
	}

	return bnb.Solve(p.Sense(), NewRelaxation(p), Brancher{}, NewRepairer(p), opts)
}
