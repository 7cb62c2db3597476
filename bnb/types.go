// Package bnb defines the core types and pluggable capability contracts of the
// branch-and-bound engine.
//
// The engine is parameterized over three independent capabilities injected at
// Solve time:
//
//	– Relaxation: bounds a subproblem defined by a list of variable fixings.
//	– Brancher:   splits a node into two mutually exclusive children.
//	– Repairer:   derives a feasible integral Solution from a partial one.
//
// Errors (sentinel):
//
//	– ErrInfeasible     the relaxation of a subproblem has no feasible point.
//	– ErrBadSense       the objective sense is neither Max nor Min.
//	– ErrNilRelaxation  a nil Relaxation was supplied.
//	– ErrNilBrancher    a nil Brancher was supplied.
//	– ErrNilRepairer    a nil Repairer was supplied.
//	– ErrBadPolicy      an unknown frontier selection policy.
//	– ErrBadWorkers     Workers < 1.
//	– ErrBadBudget      a negative node or time budget.
package bnb

import (
	"errors"
	"time"
)

// Sentinel errors returned by the engine and expected from capabilities.
var (
	// ErrInfeasible signals that the subproblem defined by the supplied
	// fixings admits no feasible point. Relaxation implementations MUST
	// return this sentinel (possibly wrapped) for infeasible subproblems;
	// the engine discards the node and continues. Any other non-nil error
	// from a Relaxation aborts the whole run.
	ErrInfeasible = errors.New("bnb: relaxation infeasible")

	// ErrBadSense indicates an objective sense that is neither Max nor Min.
	ErrBadSense = errors.New("bnb: unknown objective sense")

	// ErrNilRelaxation indicates that a nil Relaxation was passed to Solve.
	ErrNilRelaxation = errors.New("bnb: relaxation is nil")

	// ErrNilBrancher indicates that a nil Brancher was passed to Solve.
	ErrNilBrancher = errors.New("bnb: brancher is nil")

	// ErrNilRepairer indicates that a nil Repairer was passed to Solve.
	ErrNilRepairer = errors.New("bnb: repairer is nil")

	// ErrBadPolicy indicates an unrecognized frontier selection policy.
	ErrBadPolicy = errors.New("bnb: unknown selection policy")

	// ErrBadWorkers indicates Options.Workers < 1.
	ErrBadWorkers = errors.New("bnb: worker count must be positive")

	// ErrBadBudget indicates a negative NodeLimit or TimeLimit.
	ErrBadBudget = errors.New("bnb: budget must be non-negative")
)

// Sense is the optimization direction of a problem's objective.
type Sense uint8

const (
	// Max means larger objective values are better.
	Max Sense = iota

	// Min means smaller objective values are better.
	Min
)

// Valid reports whether s is a recognized sense.
func (s Sense) Valid() bool { return s == Max || s == Min }

// String returns a stable human-readable name for s.
func (s Sense) String() string {
	switch s {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "invalid"
	}
}

// Better reports whether objective value a strictly improves on b under s.
// Ties are never an improvement; the incumbent keeps the earlier solution.
func (s Sense) Better(a, b float64) bool {
	if s == Max {
		return a > b
	}

	return a < b
}

// CannotBeat reports whether a subtree whose relaxation bound is `bound` can
// never strictly improve on an incumbent objective `incumbent` under s.
// The comparison is deliberately strict: a bound exactly equal to the
// incumbent survives (the subtree is still branched). Pruning on ties would
// also be sound, but the conservative rule keeps the engine's guarantees
// independent of floating-point coincidences in the relaxation.
func (s Sense) CannotBeat(bound, incumbent float64) bool {
	if s == Max {
		return bound < incumbent
	}

	return bound > incumbent
}

// Fixing pins one decision variable to a value for the duration of a subtree.
type Fixing struct {
	// Var is the zero-based index of the decision variable.
	Var int

	// Value is the value the variable is pinned to (0 or 1 for binary
	// branching; the engine itself places no restriction).
	Value float64
}

// Solution is a feasible integral candidate: an assignment plus its objective
// value. Solutions are created by Repairer implementations (or by a terminal
// relaxation that is already integral and repaired verbatim); the engine only
// compares and stores them.
type Solution struct {
	// X holds one value per decision variable.
	X []float64

	// Objective is the objective value of X, comparable under the run's Sense.
	Objective float64
}

// Clone returns a deep copy of s (the X slice is duplicated).
func (s *Solution) Clone() *Solution {
	if s == nil {
		return nil
	}

	return &Solution{X: append([]float64(nil), s.X...), Objective: s.Objective}
}

// Relaxation bounds the subproblem obtained by applying a list of variable
// fixings to the root problem.
//
// Contracts:
//   - Stateless: the result depends only on `fixings`, never on prior calls.
//     Fixings are never carried forward between calls.
//   - Sound bound: for Max the returned bound must be ≥ the true optimum of
//     the fixed subproblem; for Min, ≤. This is what makes pruning exact.
//   - Infeasible subproblems return an error satisfying
//     errors.Is(err, ErrInfeasible); bound and partial are then ignored.
//   - The returned partial assignment may be fractional; the engine passes it
//     verbatim to the Repairer and the Brancher without interpreting it.
type Relaxation interface {
	Solve(fixings []Fixing) (bound float64, partial []float64, err error)
}

// Brancher splits a solved node into two children with mutually exclusive,
// jointly exhaustive fixings on a single branching variable.
//
// Contracts:
//   - Returns (nil, nil) when the partial assignment is already integral:
//     the node is terminal and must not be expanded further.
//   - Children are created via parent.NewChild so fixings inherit correctly.
//   - Variable selection and branch order must be deterministic. Children are
//     pushed onto the frontier in the order returned, so under depth-first
//     exploration the SECOND child is explored first.
//   - A variable must never be fixed twice on one root-to-leaf path; the
//     engine does not check this (a violation is a Brancher bug).
type Brancher interface {
	Branch(parent *Node, partial []float64) (first, second *Node)
}

// Repairer attempts to derive a feasible integral Solution from a (possibly
// fractional) partial assignment.
//
// Contracts:
//   - Must not mutate its input slice.
//   - Returns nil when no feasible integral solution can be derived from
//     this partial assignment (no incumbent update at this node).
//   - Each call returns a freshly allocated Solution; the engine takes
//     ownership of the returned value.
type Repairer interface {
	Repair(partial []float64) *Solution
}

// Result is the outcome of one engine run, together with search statistics
// (in the spirit of per-run stats reported by iterative solvers).
type Result struct {
	// Best is the final incumbent: the best feasible integral solution found.
	// Best == nil means no feasible solution was ever repaired; callers must
	// handle this explicitly (it is NOT an all-zero or zero-objective value).
	Best *Solution

	// Nodes is the number of nodes popped from the frontier and solved.
	Nodes int

	// Pruned counts nodes discarded because their bound could not beat the
	// incumbent.
	Pruned int

	// Infeasible counts nodes whose relaxation was infeasible.
	Infeasible int

	// Repaired counts nodes whose partial assignment yielded a candidate
	// Solution (whether or not it improved the incumbent).
	Repaired int

	// Complete reports whether the frontier was fully exhausted. When a node
	// or time budget stops the run early, Complete is false and Best holds
	// the best incumbent found so far (anytime contract).
	Complete bool

	// Duration is the wall-clock time spent inside Solve.
	Duration time.Duration
}
