// Internal tests for the open-node frontier: removal order per policy and
// deterministic tie-breaking.
package bnb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mkNodes returns k distinct nodes hanging off one root (identity is what
// matters here, not fixings).
func mkNodes(k int) []*Node {
	root := NewRoot(nil)
	out := make([]*Node, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = root.NewChild(Fixing{Var: i})
	}

	return out
}

func drain(f *frontier) []*Node {
	var out []*Node
	for {
		n, ok := f.pop()
		if !ok {
			break
		}
		out = append(out, n)
	}

	return out
}

func TestFrontier_DepthFirstIsLIFO(t *testing.T) {
	ns := mkNodes(4)
	f := newFrontier(DepthFirst, Max)
	for _, n := range ns {
		f.push(n, 0)
	}

	require.Equal(t, []*Node{ns[3], ns[2], ns[1], ns[0]}, drain(f))
	require.Equal(t, 0, f.len())
}

func TestFrontier_BreadthFirstIsFIFO(t *testing.T) {
	ns := mkNodes(4)
	f := newFrontier(BreadthFirst, Max)
	for _, n := range ns {
		f.push(n, 0)
	}

	require.Equal(t, []*Node{ns[0], ns[1], ns[2], ns[3]}, drain(f))
}

func TestFrontier_BreadthFirstCompactionKeepsOrder(t *testing.T) {
	// Interleave pushes and pops past the compaction threshold and verify
	// the FIFO contract never bends.
	f := newFrontier(BreadthFirst, Max)
	ns := mkNodes(512)
	var got []*Node
	var i int
	for i = 0; i < len(ns); i++ {
		f.push(ns[i], 0)
		if i%2 == 1 { // pop every other push to advance the head cursor
			n, ok := f.pop()
			require.True(t, ok)
			got = append(got, n)
		}
	}
	got = append(got, drain(f)...)

	require.Equal(t, ns, got)
}

func TestFrontier_BestFirstMaxPopsHighestBound(t *testing.T) {
	ns := mkNodes(4)
	f := newFrontier(BestFirst, Max)
	f.push(ns[0], 10)
	f.push(ns[1], 30)
	f.push(ns[2], 20)
	f.push(ns[3], 25)

	require.Equal(t, []*Node{ns[1], ns[3], ns[2], ns[0]}, drain(f))
}

func TestFrontier_BestFirstMinPopsLowestBound(t *testing.T) {
	ns := mkNodes(3)
	f := newFrontier(BestFirst, Min)
	f.push(ns[0], 10)
	f.push(ns[1], 30)
	f.push(ns[2], 20)

	require.Equal(t, []*Node{ns[0], ns[2], ns[1]}, drain(f))
}

func TestFrontier_BestFirstTiesBreakByPushOrder(t *testing.T) {
	ns := mkNodes(4)
	f := newFrontier(BestFirst, Max)
	for _, n := range ns {
		f.push(n, 7) // all equal priorities
	}

	require.Equal(t, ns, drain(f))
}

func TestFrontier_PopEmpty(t *testing.T) {
	for _, policy := range []SelectionPolicy{DepthFirst, BreadthFirst, BestFirst} {
		f := newFrontier(policy, Max)
		n, ok := f.pop()
		require.False(t, ok, policy.String())
		require.Nil(t, n, policy.String())
	}
}
