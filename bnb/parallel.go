// Package bnb: shared-frontier parallel search.
//
// With Options.Workers > 1 the open-node collection is partitioned implicitly:
// every worker pops from one shared frontier guarded by a mutex, solves its
// node outside the lock, and re-enters the lock to update the incumbent, run
// the pruning test and push children. The incumbent is the only mutable
// shared state, and every read that feeds the pruning test happens under the
// same mutex as every update — a worker can never prune against a torn or
// stale-beyond-the-lock incumbent value.
//
// Termination uses an in-flight counter: the search is over when the frontier
// is empty AND no worker still holds a popped node (an in-flight worker may
// yet push children). Idle workers wait on a condition variable and are woken
// whenever work is pushed, the in-flight count hits zero, or the run stops.
//
// Exploration order is nondeterministic across runs, but the final objective
// is not: pruning soundness does not depend on the order nodes are explored,
// only on the incumbent being monotone and bound domination holding.
package bnb

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// parallelState is everything the workers share, guarded by mu.
type parallelState struct {
	mu   sync.Mutex
	cond *sync.Cond

	front     *frontier
	inflight  int
	incumbent *Solution

	stopped bool // budget fired or a collaborator failed
	err     error

	res Result
}

// solveParallel runs the Workers > 1 variant of Solve. Inputs are already
// validated.
func solveParallel(sense Sense, relax Relaxation, brancher Brancher, repairer Repairer, opts Options) (Result, error) {
	start := time.Now()

	st := &parallelState{front: newFrontier(opts.Policy, sense)}
	st.cond = sync.NewCond(&st.mu)
	st.front.push(NewRoot(relax), rootPriority(sense))

	var (
		useDeadline bool
		deadline    time.Time
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = start.Add(opts.TimeLimit)
	}

	worker := func() error {
		var (
			node          *Node
			bound         float64
			partial       []float64
			err           error
			sol           *Solution
			first, second *Node
		)
		for {
			st.mu.Lock()
			for st.front.len() == 0 && st.inflight > 0 && !st.stopped {
				st.cond.Wait()
			}
			if st.stopped || (st.front.len() == 0 && st.inflight == 0) {
				st.mu.Unlock()

				return nil
			}
			if (opts.NodeLimit > 0 && st.res.Nodes >= opts.NodeLimit) ||
				(useDeadline && time.Now().After(deadline)) {
				st.stopped = true
				st.cond.Broadcast()
				st.mu.Unlock()

				return nil
			}
			node, _ = st.front.pop()
			st.inflight++
			st.res.Nodes++
			st.mu.Unlock()

			// Relaxation, repair and branching are pure with respect to the
			// shared state; keep them outside the lock. The branch result is
			// discarded if the pruning test fires — wasted work, never
			// wrong work.
			bound, partial, err = node.Solve()
			sol = nil
			first, second = nil, nil
			if err == nil {
				sol = repairer.Repair(partial)
				first, second = brancher.Branch(node, partial)
			}

			var fatal error
			st.mu.Lock()
			switch {
			case err != nil && errors.Is(err, ErrInfeasible):
				st.res.Infeasible++

			case err != nil:
				if st.err == nil {
					st.err = err
				}
				st.stopped = true
				fatal = err

			default:
				if sol != nil {
					st.res.Repaired++
					if st.incumbent == nil || sense.Better(sol.Objective, st.incumbent.Objective) {
						st.incumbent = sol
						opts.Logger.Debug().
							Float64("objective", sol.Objective).
							Int("nodes", st.res.Nodes).
							Msg("incumbent updated")
					}
				}
				if st.incumbent != nil && sense.CannotBeat(bound, st.incumbent.Objective) {
					st.res.Pruned++
				} else {
					if first != nil {
						st.front.push(first, bound)
					}
					if second != nil {
						st.front.push(second, bound)
					}
				}
			}
			st.inflight--
			// Wake peers: new work may be available, or the search may be over.
			st.cond.Broadcast()
			st.mu.Unlock()

			if fatal != nil {
				return fatal
			}
		}
	}

	var g errgroup.Group
	var w int
	for w = 0; w < opts.Workers; w++ {
		g.Go(worker)
	}
	err := g.Wait()

	st.mu.Lock()
	res := st.res
	res.Best = st.incumbent
	res.Complete = err == nil && !st.stopped
	st.mu.Unlock()
	res.Duration = time.Since(start)

	return res, err
}
