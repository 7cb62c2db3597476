// Package knapsack: sentinel errors shared by the package.
package knapsack

import "errors"

// Sentinel errors returned by the knapsack formulation.
var (
	// ErrLengthMismatch indicates profits and weights of different lengths.
	ErrLengthMismatch = errors.New("knapsack: profits and weights length mismatch")

	// ErrNoItems indicates an instance with zero items.
	ErrNoItems = errors.New("knapsack: instance has no items")

	// ErrBadItem indicates a profit that is negative or not finite, or a
	// weight that is non-positive or not finite.
	ErrBadItem = errors.New("knapsack: item profit/weight out of range")

	// ErrBadCapacity indicates a capacity that is negative or not finite.
	ErrBadCapacity = errors.New("knapsack: capacity must be finite and non-negative")

	// ErrBadFixing indicates a fixing whose variable index is outside the
	// instance, or whose value is not 0 or 1.
	ErrBadFixing = errors.New("knapsack: fixing out of range")

	// ErrBadSize indicates a Random size too small to draw items from.
	ErrBadSize = errors.New("knapsack: random instance needs at least 2 items")

	// ErrNilProblem indicates a nil *Problem passed to Solve.
	ErrNilProblem = errors.New("knapsack: problem is nil")
)
