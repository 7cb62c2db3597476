// Package knapsack - 0/1 branching on the fractional variable.
package knapsack

import "github.com/katalvlaran/branchbound/bnb"

// Brancher implements classic 0/1 branching for the knapsack relaxation: the
// partial assignment produced by the greedy fill contains at most one
// fractional entry, and that entry is the branching variable. The scan runs
// in ascending index order, so variable selection is deterministic even for
// partial assignments from other relaxations.
type Brancher struct{}

// Compile-time capability check.
var _ bnb.Brancher = Brancher{}

// Branch returns the two children fixing the fractional variable to 0 and to
// 1, in that order. Children are pushed onto the frontier in returned order,
// so under depth-first exploration the 1-branch (take the item) is explored
// first. An integral partial assignment returns (nil, nil): the node is a
// terminal integral solution and must not be expanded.
//
// Complexity: O(n) scan + two O(1) node allocations.
func (Brancher) Branch(parent *bnb.Node, partial []float64) (*bnb.Node, *bnb.Node) {
	var (
		i int
		v float64
	)
	for i, v = range partial {
		if v > 0 && v < 1 {
			zero := parent.NewChild(bnb.Fixing{Var: i, Value: 0})
			one := parent.NewChild(bnb.Fixing{Var: i, Value: 1})

			return zero, one
		}
	}

	return nil, nil
}
