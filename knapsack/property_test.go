// Package knapsack_test: property-based checks of the engine's optimality
// guarantee against exhaustive enumeration on small random instances.
package knapsack_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/branchbound/bnb"
	"github.com/katalvlaran/branchbound/knapsack"
)

// bruteForce enumerates all 2^n subsets and returns the optimal profit.
// Only usable for small n; the reference oracle for soundness properties.
func bruteForce(p *knapsack.Problem) float64 {
	n := p.N()
	best := 0.0
	var mask, i int
	var weight, profit float64
	for mask = 0; mask < 1<<n; mask++ {
		weight, profit = 0, 0
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				weight += p.Weight(i)
				profit += p.Profit(i)
			}
		}
		if weight <= p.Capacity() && profit > best {
			best = profit
		}
	}

	return best
}

func TestProperty_EngineMatchesBruteForce(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("branch-and-bound optimum == exhaustive optimum", prop.ForAll(
		func(n int, seed int64) bool {
			p, err := knapsack.Random(n, seed)
			if err != nil {
				return false
			}
			res, err := knapsack.Solve(p, bnb.DefaultOptions())
			if err != nil || res.Best == nil || !res.Complete {
				return false
			}

			return res.Best.Objective == bruteForce(p)
		},
		gen.IntRange(2, 12),
		gen.Int64Range(1, 1<<30),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_ParallelMatchesBruteForce(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)
	properties.Property("parallel optimum == exhaustive optimum", prop.ForAll(
		func(n int, seed int64) bool {
			p, err := knapsack.Random(n, seed)
			if err != nil {
				return false
			}
			opts := bnb.DefaultOptions()
			opts.Workers = 4
			res, err := knapsack.Solve(p, opts)
			if err != nil || res.Best == nil || !res.Complete {
				return false
			}

			return res.Best.Objective == bruteForce(p)
		},
		gen.IntRange(2, 10),
		gen.Int64Range(1, 1<<30),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_RelaxationStateless(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("same fixings ⇒ same bound, regardless of call history", prop.ForAll(
		func(seed int64, v0, v1 bool) bool {
			p, err := knapsack.Random(8, seed)
			if err != nil {
				return false
			}
			r := knapsack.NewRelaxation(p)
			fix := []bnb.Fixing{
				{Var: 0, Value: b2f(v0)},
				{Var: 3, Value: b2f(v1)},
			}

			b1, _, err1 := r.Solve(fix)
			_, _, _ = r.Solve(nil) // interleaved unrelated call
			b2, _, err2 := r.Solve(fix)

			if err1 != nil || err2 != nil {
				// Both calls must fail identically (e.g. infeasible fixings).
				return err1 != nil && err2 != nil
			}

			return b1 == b2
		},
		gen.Int64Range(1, 1<<30),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func b2f(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
