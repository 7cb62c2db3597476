// Package bnb: the open-node frontier.
//
// The frontier is the collection of not-yet-explored nodes; its removal order
// is the search strategy. Three policies are provided:
//
//	– DepthFirst:   LIFO stack.
//	– BreadthFirst: FIFO queue (head cursor + periodic compaction, so pops
//	                stay amortized O(1) without unbounded slack).
//	– BestFirst:    binary heap keyed by a sense-aware priority with a FIFO
//	                tie-break on push sequence, keeping pops deterministic.
//
// The frontier is not safe for concurrent use; the parallel engine guards it
// with its own mutex.
package bnb

import "container/heap"

// frontierItem pairs a node with the priority recorded at push time.
// For BestFirst the priority is the relaxation bound of the node's parent —
// the tightest information available before the node itself is solved.
type frontierItem struct {
	node     *Node
	priority float64
	seq      uint64
}

// boundHeap orders items so the most promising bound pops first:
// highest priority for Max, lowest for Min. Equal priorities pop in push
// order.
type boundHeap struct {
	items []frontierItem
	sense Sense
}

func (h *boundHeap) Len() int { return len(h.items) }

func (h *boundHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.priority == b.priority {
		return a.seq < b.seq
	}
	if h.sense == Max {
		return a.priority > b.priority
	}

	return a.priority < b.priority
}

func (h *boundHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *boundHeap) Push(x any) { h.items = append(h.items, x.(frontierItem)) }

func (h *boundHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = frontierItem{} // release the node reference
	h.items = old[:n-1]

	return it
}

// frontier is the policy-dispatching open-node container.
type frontier struct {
	policy SelectionPolicy

	// DepthFirst / BreadthFirst storage.
	items []frontierItem
	head  int // BreadthFirst read cursor into items

	// BestFirst storage.
	hp boundHeap

	seq uint64 // monotone push counter for deterministic tie-breaks
}

// newFrontier creates an empty frontier for the given policy and sense.
// The sense only matters for BestFirst ordering.
func newFrontier(policy SelectionPolicy, sense Sense) *frontier {
	return &frontier{policy: policy, hp: boundHeap{sense: sense}}
}

// len returns the number of open nodes.
func (f *frontier) len() int {
	if f.policy == BestFirst {
		return f.hp.Len()
	}

	return len(f.items) - f.head
}

// push adds n with the given priority. Priority is ignored by DepthFirst and
// BreadthFirst but recorded anyway to keep the call sites uniform.
func (f *frontier) push(n *Node, priority float64) {
	it := frontierItem{node: n, priority: priority, seq: f.seq}
	f.seq++
	if f.policy == BestFirst {
		heap.Push(&f.hp, it)

		return
	}
	f.items = append(f.items, it)
}

// pop removes and returns the next node per the policy, or (nil, false) when
// the frontier is empty.
func (f *frontier) pop() (*Node, bool) {
	switch f.policy {
	case BestFirst:
		if f.hp.Len() == 0 {
			return nil, false
		}

		return heap.Pop(&f.hp).(frontierItem).node, true

	case BreadthFirst:
		if f.head >= len(f.items) {
			return nil, false
		}
		n := f.items[f.head].node
		f.items[f.head] = frontierItem{}
		f.head++
		// Compact once the dead prefix dominates the backing array.
		if f.head > 64 && f.head*2 >= len(f.items) {
			f.items = append(f.items[:0], f.items[f.head:]...)
			f.head = 0
		}

		return n, true

	default: // DepthFirst
		n := len(f.items)
		if n == 0 {
			return nil, false
		}
		it := f.items[n-1]
		f.items[n-1] = frontierItem{}
		f.items = f.items[:n-1]

		return it.node, true
	}
}
