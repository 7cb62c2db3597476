// Package bnb: run configuration for the search engine.
//
// Options is an explicit immutable value passed to Solve — there is no global
// parameter registry and no mutable defaults map. DefaultOptions is the single
// source of truth for zero-configuration behavior.
package bnb

import (
	"time"

	"github.com/rs/zerolog"
)

// SelectionPolicy determines which open node the engine explores next.
type SelectionPolicy uint8

const (
	// DepthFirst pops the most recently pushed node (LIFO). Finds feasible
	// incumbents quickly and keeps the frontier small; the reference policy.
	DepthFirst SelectionPolicy = iota

	// BreadthFirst pops the oldest pushed node (FIFO).
	BreadthFirst

	// BestFirst pops the node with the most promising priority, where the
	// priority of a child is the relaxation bound of its parent at push time.
	// Ties break by push order (FIFO), keeping exploration deterministic.
	BestFirst
)

// Valid reports whether p is a recognized policy.
func (p SelectionPolicy) Valid() bool {
	return p == DepthFirst || p == BreadthFirst || p == BestFirst
}

// String returns a stable human-readable name for p.
func (p SelectionPolicy) String() string {
	switch p {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	case BestFirst:
		return "best-first"
	default:
		return "invalid"
	}
}

// Options configures one engine run.
//
// Policy    – frontier removal order (see SelectionPolicy).
// Workers   – number of concurrent search workers. 1 runs the synchronous
//             single-threaded loop; >1 runs the shared-frontier parallel loop
//             with a serialized incumbent.
// NodeLimit – maximum number of nodes to pop and solve. 0 means unlimited.
//             When exhausted the run stops and returns the best incumbent
//             found so far with Result.Complete == false.
// TimeLimit – wall-clock budget, checked once per loop iteration. 0 means
//             unlimited. Same anytime semantics as NodeLimit.
// Logger    – structured trace logging. Defaults to zerolog.Nop(); supply a
//             real logger to observe incumbent updates (debug level) and
//             per-node events (trace level).
type Options struct {
	Policy    SelectionPolicy
	Workers   int
	NodeLimit int
	TimeLimit time.Duration
	Logger    zerolog.Logger
}

// DefaultOptions returns the canonical configuration: depth-first, one
// worker, no budgets, logging disabled.
func DefaultOptions() Options {
	return Options{
		Policy:    DepthFirst,
		Workers:   1,
		NodeLimit: 0,
		TimeLimit: 0,
		Logger:    zerolog.Nop(),
	}
}

// Validate checks o for nonsensical values.
//
// Errors: ErrBadPolicy, ErrBadWorkers, ErrBadBudget.
func (o Options) Validate() error {
	if !o.Policy.Valid() {
		return ErrBadPolicy
	}
	if o.Workers < 1 {
		return ErrBadWorkers
	}
	if o.NodeLimit < 0 || o.TimeLimit < 0 {
		return ErrBadBudget
	}

	return nil
}
