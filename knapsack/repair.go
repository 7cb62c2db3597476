// Package knapsack - floor-rounding heuristic repair.
package knapsack

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/branchbound/bnb"
)

// Repairer rounds a fractional partial assignment down to the nearest
// feasible 0/1 vector. Dropping the fractional item only removes weight, so
// the floor of any capacity-respecting fractional fill is itself feasible —
// repair never fails for this relaxation.
type Repairer struct {
	p *Problem
}

// NewRepairer binds a repairer to p (needed to price the rounded vector).
func NewRepairer(p *Problem) Repairer {
	return Repairer{p: p}
}

// Compile-time capability check.
var _ bnb.Repairer = Repairer{}

// Repair floors every entry of partial into a fresh vector and prices it.
// The input is never mutated, and each call allocates a new Solution, so two
// calls on the same partial assignment yield equal, independent results.
//
// Complexity: O(n).
func (r Repairer) Repair(partial []float64) *bnb.Solution {
	if partial == nil {
		return nil
	}
	var (
		x = make([]float64, len(partial))
		i int
	)
	for i = range partial {
		x[i] = math.Floor(partial[i])
	}

	return &bnb.Solution{X: x, Objective: floats.Dot(x, r.p.profits)}
}
