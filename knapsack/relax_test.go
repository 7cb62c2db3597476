// Package knapsack_test: the fractional relaxation — bound values,
// infeasibility signaling, and statelessness across interleaved calls.
package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchbound/bnb"
	"github.com/katalvlaran/branchbound/knapsack"
)

// literalProblem is the canonical worked instance: optimum 220 by items 1,2.
func literalProblem(t *testing.T) *knapsack.Problem {
	t.Helper()
	p, err := knapsack.New([]float64{60, 100, 120}, []float64{10, 20, 30}, 50)
	require.NoError(t, err)

	return p
}

func TestRelaxation_RootBound(t *testing.T) {
	r := knapsack.NewRelaxation(literalProblem(t))

	bound, partial, err := r.Solve(nil)
	require.NoError(t, err)
	// Greedy by ratio (6, 5, 4): items 0 and 1 fully (weight 30), item 2
	// fractionally 20/30 = 2/3 ⇒ bound 60 + 100 + 80 = 240.
	require.InDelta(t, 240.0, bound, 1e-9)
	require.InDelta(t, 1.0, partial[0], 1e-9)
	require.InDelta(t, 1.0, partial[1], 1e-9)
	require.InDelta(t, 2.0/3.0, partial[2], 1e-9)
}

func TestRelaxation_FixingsApplied(t *testing.T) {
	r := knapsack.NewRelaxation(literalProblem(t))

	// Excluding item 0 leaves capacity 50 for items 1 and 2 — both fit
	// exactly, no fraction, bound 220.
	bound, partial, err := r.Solve([]bnb.Fixing{{Var: 0, Value: 0}})
	require.NoError(t, err)
	require.InDelta(t, 220.0, bound, 1e-9)
	require.Equal(t, []float64{0, 1, 1}, partial)
	require.True(t, knapsack.Integral(partial))
}

func TestRelaxation_InfeasibleFixings(t *testing.T) {
	p, err := knapsack.New([]float64{10, 10}, []float64{30, 30}, 40)
	require.NoError(t, err)
	r := knapsack.NewRelaxation(p)

	_, _, err = r.Solve([]bnb.Fixing{{Var: 0, Value: 1}, {Var: 1, Value: 1}})
	require.ErrorIs(t, err, bnb.ErrInfeasible)
}

func TestRelaxation_BadFixingSentinel(t *testing.T) {
	r := knapsack.NewRelaxation(literalProblem(t))

	_, _, err := r.Solve([]bnb.Fixing{{Var: 7, Value: 1}})
	require.ErrorIs(t, err, knapsack.ErrBadFixing)

	_, _, err = r.Solve([]bnb.Fixing{{Var: 0, Value: 0.5}})
	require.ErrorIs(t, err, knapsack.ErrBadFixing)
}

func TestRelaxation_StatelessAcrossInterleavedCalls(t *testing.T) {
	r := knapsack.NewRelaxation(literalProblem(t))
	fix := []bnb.Fixing{{Var: 2, Value: 1}}

	b1, x1, err := r.Solve(fix)
	require.NoError(t, err)

	// Interleave unrelated calls, including an infeasible one.
	_, _, _ = r.Solve([]bnb.Fixing{{Var: 0, Value: 1}, {Var: 1, Value: 1}, {Var: 2, Value: 1}})
	_, _, _ = r.Solve(nil)

	b2, x2, err := r.Solve(fix)
	require.NoError(t, err)
	require.Equal(t, b1, b2, "same fixings must yield the same bound")
	require.Equal(t, x1, x2)
}

func TestRelaxation_ZeroCapacity(t *testing.T) {
	p, err := knapsack.New([]float64{5, 7}, []float64{2, 3}, 0)
	require.NoError(t, err)
	r := knapsack.NewRelaxation(p)

	bound, partial, err := r.Solve(nil)
	require.NoError(t, err)
	require.Zero(t, bound)
	require.True(t, knapsack.Integral(partial))
	require.Equal(t, []float64{0, 0}, partial)
}

func TestIntegral(t *testing.T) {
	require.True(t, knapsack.Integral(nil))
	require.True(t, knapsack.Integral([]float64{0, 1, 1}))
	require.False(t, knapsack.Integral([]float64{0, 0.5, 1}))
}
