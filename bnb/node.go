// Package bnb: the search-tree node.
//
// A Node records exactly one variable fixing plus a back-reference to its
// parent; the effective fixing set of a node is reconstructed on demand by
// walking parent links to the root. No node caches the union, so a
// Relaxation always receives the fixings replayed from scratch — there is no
// hidden state to drift out of sync.
//
// Lifetime: nodes form a strict tree rooted at one root. A child holds the
// only strong reference to its parent chain, so an ancestor stays reachable
// exactly as long as some descendant is alive on the frontier; the garbage
// collector reclaims abandoned branches without any manual bookkeeping.
package bnb

// Node is one node of the branch-and-bound tree. Nodes are immutable after
// creation; they are produced by NewRoot (the engine) and NewChild (a
// Brancher) and never mutated afterwards.
type Node struct {
	parent *Node
	relax  Relaxation

	fixing    Fixing
	hasFixing bool
	depth     int
}

// NewRoot creates the root node of a search tree. The root carries no fixing;
// r is the shared relaxation solver inherited by every descendant.
func NewRoot(r Relaxation) *Node {
	return &Node{relax: r}
}

// NewChild allocates a child of n carrying the single fixing f. The child
// shares n's relaxation solver and sits one level deeper in the tree.
//
// Complexity: O(1); no ancestor data is copied.
func (n *Node) NewChild(f Fixing) *Node {
	return &Node{
		parent:    n,
		relax:     n.relax,
		fixing:    f,
		hasFixing: true,
		depth:     n.depth + 1,
	}
}

// Parent returns n's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Depth returns n's distance from the root (root = 0).
func (n *Node) Depth() int { return n.depth }

// Fixing returns n's own fixing and whether it has one (the root does not).
func (n *Node) Fixing() (Fixing, bool) { return n.fixing, n.hasFixing }

// FixingsOnPath collects every fixing on the path from n to the root, own
// fixing first, then the parent's, and so on. The root contributes nothing
// unless it was given a fixing. For a node at depth d created via NewChild
// the result has exactly d entries.
//
// Duplicate variables on one path are a Brancher error and are not checked
// here.
//
// Complexity: O(d) time and one O(d) allocation.
func (n *Node) FixingsOnPath() []Fixing {
	out := make([]Fixing, 0, n.depth+1)
	var cur *Node
	for cur = n; cur != nil; cur = cur.parent {
		if cur.hasFixing {
			out = append(out, cur.fixing)
		}
	}

	return out
}

// Solve delegates to the shared relaxation solver with the fixings replayed
// from this node's root path. The relaxation receives a fresh fixing slice on
// every call and must not retain it.
func (n *Node) Solve() (bound float64, partial []float64, err error) {
	return n.relax.Solve(n.FixingsOnPath())
}
