// Package bnb — the explore/bound/branch/prune loop.
//
// One engine iteration moves a node through the implicit state machine
// Pending → Solved → {Pruned | Branched | Exhausted}:
//
//  1. Pop the next node per the selection policy.
//  2. Solve its relaxation (fixings replayed from the root path). An
//     infeasible subproblem discards the node — a normal outcome, not an
//     error.
//  3. Attempt heuristic repair; a repaired Solution replaces the incumbent
//     when the incumbent is absent or strictly worse under the sense.
//  4. Pruning test: discard the node when its bound cannot strictly beat the
//     incumbent. An absent incumbent never prunes. A bound exactly equal to
//     the incumbent is NOT pruned.
//  5. Branch: push returned children onto the frontier in order. No children
//     means the partial assignment was integral — the node is exhausted.
//  6. Repeat until the frontier is empty or a budget stops the run.
//
// Soundness rests on two invariants: the relaxation bound dominates the true
// optimum of its subtree, and the incumbent only ever improves. Together they
// guarantee a pruned subtree cannot contain anything better than the final
// incumbent.
//
// Complexity: per node, one relaxation solve plus O(depth) fixing replay and
// O(log frontier) for BestFirst (O(1) otherwise). Worst case the tree is
// exponential in the variable count; pruning is what makes it practical.
package bnb

import (
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Solve runs branch-and-bound to completion (or budget exhaustion) and
// returns the final incumbent with run statistics.
//
// Result.Best == nil means no feasible solution was ever repaired; callers
// must treat this as an explicit "no solution" outcome.
//
// Errors:
//   - ErrBadSense / ErrNil* / ErrBadPolicy / ErrBadWorkers / ErrBadBudget on
//     invalid configuration (fail fast, nothing is explored).
//   - Any non-ErrInfeasible error returned by the Relaxation aborts the run
//     and is forwarded as-is (a collaborator failure, not a search outcome).
func Solve(sense Sense, relax Relaxation, brancher Brancher, repairer Repairer, opts Options) (Result, error) {
	if !sense.Valid() {
		return Result{}, ErrBadSense
	}
	if relax == nil {
		return Result{}, ErrNilRelaxation
	}
	if brancher == nil {
		return Result{}, ErrNilBrancher
	}
	if repairer == nil {
		return Result{}, ErrNilRepairer
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	if opts.Workers > 1 {
		return solveParallel(sense, relax, brancher, repairer, opts)
	}

	e := engine{
		sense:    sense,
		relax:    relax,
		brancher: brancher,
		repairer: repairer,
		log:      opts.Logger,
		opts:     opts,
		front:    newFrontier(opts.Policy, sense),
	}

	return e.run()
}

// engine holds all sequential search state. A dedicated struct (instead of
// closures over Solve locals) keeps the hot path explicit and testable.
type engine struct {
	sense    Sense
	relax    Relaxation
	brancher Brancher
	repairer Repairer
	opts     Options
	log      zerolog.Logger

	front     *frontier
	incumbent *Solution

	useDeadline bool
	deadline    time.Time

	res Result
}

// rootPriority is the BestFirst priority of the root node: the most
// optimistic value under the sense, so the root always pops first.
func rootPriority(sense Sense) float64 {
	if sense == Max {
		return math.Inf(1)
	}

	return math.Inf(-1)
}

// budgetExhausted reports whether a node or time budget stops the run before
// the next pop. Checked once per loop iteration (anytime contract).
func (e *engine) budgetExhausted() bool {
	if e.opts.NodeLimit > 0 && e.res.Nodes >= e.opts.NodeLimit {
		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return true
	}

	return false
}

// updateIncumbent installs sol when it strictly improves on the current
// incumbent (or unconditionally when none exists). The incumbent only ever
// moves toward better objective values.
func (e *engine) updateIncumbent(sol *Solution) {
	if sol == nil {
		return
	}
	e.res.Repaired++
	if e.incumbent == nil || e.sense.Better(sol.Objective, e.incumbent.Objective) {
		e.incumbent = sol
		e.log.Debug().
			Float64("objective", sol.Objective).
			Int("nodes", e.res.Nodes).
			Msg("incumbent updated")
	}
}

// run drives the loop until the frontier empties or a budget fires.
func (e *engine) run() (Result, error) {
	start := time.Now()
	if e.opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(e.opts.TimeLimit)
	}

	e.front.push(NewRoot(e.relax), rootPriority(e.sense))

	var (
		node          *Node
		bound         float64
		partial       []float64
		err           error
		stopped       bool
		first, second *Node
	)
	for e.front.len() > 0 {
		if e.budgetExhausted() {
			stopped = true

			break
		}

		node, _ = e.front.pop()
		e.res.Nodes++

		bound, partial, err = node.Solve()
		if err != nil {
			if errors.Is(err, ErrInfeasible) {
				// Expected, frequent: abandon the node, nothing to branch.
				e.res.Infeasible++

				continue
			}
			e.res.Best = e.incumbent
			e.res.Duration = time.Since(start)

			return e.res, err
		}

		e.log.Trace().
			Int("depth", node.Depth()).
			Float64("bound", bound).
			Msg("node solved")

		// Repair BEFORE the pruning test: even a node about to be pruned may
		// contribute the incumbent that justifies pruning it.
		e.updateIncumbent(e.repairer.Repair(partial))

		if e.incumbent != nil && e.sense.CannotBeat(bound, e.incumbent.Objective) {
			e.res.Pruned++

			continue
		}

		first, second = e.brancher.Branch(node, partial)
		if first != nil {
			e.front.push(first, bound)
		}
		if second != nil {
			e.front.push(second, bound)
		}
		// No children: the partial assignment was integral; the node is
		// exhausted and its incumbent contribution already happened above.
	}

	e.res.Best = e.incumbent
	e.res.Complete = !stopped
	e.res.Duration = time.Since(start)
	e.log.Debug().
		Int("nodes", e.res.Nodes).
		Int("pruned", e.res.Pruned).
		Int("infeasible", e.res.Infeasible).
		Bool("complete", e.res.Complete).
		Msg("search finished")

	return e.res, nil
}
