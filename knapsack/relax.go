// Package knapsack - the fractional (continuous) relaxation.
package knapsack

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/branchbound/bnb"
)

// Relaxation solves the continuous knapsack over the items left free by a
// node's fixings. It is stateless across calls: every Solve reconstructs the
// fixed profit/weight from scratch and nothing is carried forward.
type Relaxation struct {
	p *Problem
}

// NewRelaxation binds a relaxation solver to p. One Relaxation is shared by
// every node of a search run.
func NewRelaxation(p *Problem) *Relaxation {
	return &Relaxation{p: p}
}

// Compile-time capability check.
var _ bnb.Relaxation = (*Relaxation)(nil)

// Solve computes the fractional-knapsack bound under the given fixings.
//
// Stages:
//  1. Apply fixings: mark fixed items and accumulate their weight/profit.
//  2. Feasibility: fixed weight beyond the capacity ⇒ bnb.ErrInfeasible.
//  3. Greedy fill of the remaining capacity in precomputed ratio order; the
//     first item that does not fully fit enters with fraction
//     (remaining capacity)/weight and the fill stops — at most one entry of
//     the partial assignment is fractional.
//
// The returned bound is the total profit including the fractional
// contribution; it dominates every 0/1 completion of the same fixings, which
// is exactly the soundness contract pruning relies on.
//
// Errors: ErrBadFixing on an out-of-range variable index or a value outside
// {0, 1}; bnb.ErrInfeasible on an over-capacity fixing set.
//
// Complexity: O(len(fixings) + n).
func (r *Relaxation) Solve(fixings []bnb.Fixing) (float64, []float64, error) {
	var (
		n     = r.p.N()
		fixed = make([]bool, n)
		x     = make([]float64, n)
		f     bnb.Fixing
	)
	for _, f = range fixings {
		if f.Var < 0 || f.Var >= n || (f.Value != 0 && f.Value != 1) {
			return 0, nil, ErrBadFixing
		}
		fixed[f.Var] = true
		x[f.Var] = f.Value
	}

	var (
		weight = floats.Dot(x, r.p.weights)
		profit = floats.Dot(x, r.p.profits)
	)
	if weight > r.p.capacity {
		return 0, nil, bnb.ErrInfeasible
	}

	var i int
	for _, i = range r.p.ratioOrder {
		if fixed[i] {
			continue
		}
		if weight+r.p.weights[i] > r.p.capacity {
			// First overflowing item enters fractionally; fill complete.
			frac := (r.p.capacity - weight) / r.p.weights[i]
			x[i] = frac
			profit += r.p.profits[i] * frac

			return profit, x, nil
		}
		weight += r.p.weights[i]
		profit += r.p.profits[i]
		x[i] = 1
	}

	return profit, x, nil
}

// Integral reports whether every entry of x is a whole number. Exposed as a
// helper for tests and custom branchers.
func Integral(x []float64) bool {
	var v float64
	for _, v = range x {
		if v != math.Trunc(v) {
			return false
		}
	}

	return true
}
