// Package knapsack: the immutable problem instance.
package knapsack

import (
	"math"
	"sort"

	"github.com/katalvlaran/branchbound/bnb"
)

// Problem is one 0/1 knapsack instance. Instances are immutable once built:
// New copies its inputs and the engine never mutates a Problem. The
// profit/weight ratio order is precomputed here, once, so that every node of
// the search tree reuses it instead of re-sorting.
type Problem struct {
	profits  []float64
	weights  []float64
	capacity float64

	// ratioOrder lists item indices by descending profit/weight ratio,
	// index-ascending on ties — fully deterministic.
	ratioOrder []int
}

// New validates and builds an instance.
//
// Contracts:
//   - len(profits) == len(weights) ≥ 1.
//   - Every profit is finite and ≥ 0; every weight is finite and > 0
//     (strictly, so ratios are well-defined).
//   - capacity is finite and ≥ 0. A zero capacity is a legal, trivially
//     constrained instance.
//
// Errors: ErrLengthMismatch, ErrNoItems, ErrBadItem, ErrBadCapacity.
//
// Complexity: O(n log n) for the ratio argsort; O(n) otherwise.
func New(profits, weights []float64, capacity float64) (*Problem, error) {
	if len(profits) != len(weights) {
		return nil, ErrLengthMismatch
	}
	if len(profits) == 0 {
		return nil, ErrNoItems
	}
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity < 0 {
		return nil, ErrBadCapacity
	}
	var i int
	for i = range profits {
		if math.IsNaN(profits[i]) || math.IsInf(profits[i], 0) || profits[i] < 0 {
			return nil, ErrBadItem
		}
		if math.IsNaN(weights[i]) || math.IsInf(weights[i], 0) || weights[i] <= 0 {
			return nil, ErrBadItem
		}
	}

	p := &Problem{
		profits:  append([]float64(nil), profits...),
		weights:  append([]float64(nil), weights...),
		capacity: capacity,
	}

	p.ratioOrder = make([]int, len(profits))
	for i = range p.ratioOrder {
		p.ratioOrder[i] = i
	}
	sort.SliceStable(p.ratioOrder, func(a, b int) bool {
		ra := p.profits[p.ratioOrder[a]] / p.weights[p.ratioOrder[a]]
		rb := p.profits[p.ratioOrder[b]] / p.weights[p.ratioOrder[b]]
		if ra == rb {
			return p.ratioOrder[a] < p.ratioOrder[b]
		}

		return ra > rb
	})

	return p, nil
}

// N returns the number of items.
func (p *Problem) N() int { return len(p.profits) }

// Profit returns the profit of item i.
func (p *Problem) Profit(i int) float64 { return p.profits[i] }

// Weight returns the weight of item i.
func (p *Problem) Weight(i int) float64 { return p.weights[i] }

// Capacity returns the knapsack capacity.
func (p *Problem) Capacity() float64 { return p.capacity }

// Sense returns the objective sense of the formulation. Knapsack maximizes
// profit; the constructor fixes this once and nothing can change it later.
func (p *Problem) Sense() bnb.Sense { return bnb.Max }

// RatioOrder returns a copy of the precomputed item order by descending
// profit/weight ratio. Exposed for tests and diagnostics.
func (p *Problem) RatioOrder() []int {
	return append([]int(nil), p.ratioOrder...)
}
