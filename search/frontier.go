package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// node is a frontier entry: a point plus the algorithm-specific scores
// that order it. Nodes never outlive the search call that created them.
type node struct {
	pt  grid.Point
	id  string // canonical "x,y" identifier
	g   int    // accumulated path cost from start (UCS, A*)
	h   int    // heuristic estimate to goal (Greedy, A*)
	f   int    // combined priority g+h (A*)
	seq int    // frontier insertion sequence; breaks priority ties
	idx int    // position within the heap, maintained by Swap
}

// frontier is the uniform pop-next-per-policy surface the search loop
// drives: FIFO for BFS, LIFO for DFS, keyed-min for UCS/Greedy/A*.
type frontier interface {
	push(n *node)
	pop() *node
	size() int
	// ids returns the identifiers of all queued entries, in container
	// order. Only consumed by snapshot capture.
	ids() []string
}

//----------------------------------------------------------------------------//
// FIFO (BFS)
//----------------------------------------------------------------------------//

// fifoFrontier is a plain queue: push at the back, pop at the front.
type fifoFrontier struct {
	items []*node
}

func newFIFO() *fifoFrontier { return &fifoFrontier{} }

func (q *fifoFrontier) push(n *node) { q.items = append(q.items, n) }

func (q *fifoFrontier) pop() *node {
	n := q.items[0]
	q.items = q.items[1:]

	return n
}

func (q *fifoFrontier) size() int { return len(q.items) }

func (q *fifoFrontier) ids() []string { return idsOf(q.items) }

//----------------------------------------------------------------------------//
// LIFO (DFS)
//----------------------------------------------------------------------------//

// lifoFrontier is a stack: push and pop at the top.
type lifoFrontier struct {
	items []*node
}

func newLIFO() *lifoFrontier { return &lifoFrontier{} }

func (s *lifoFrontier) push(n *node) { s.items = append(s.items, n) }

func (s *lifoFrontier) pop() *node {
	last := len(s.items) - 1
	n := s.items[last]
	s.items = s.items[:last]

	return n
}

func (s *lifoFrontier) size() int { return len(s.items) }

func (s *lifoFrontier) ids() []string { return idsOf(s.items) }

//----------------------------------------------------------------------------//
// Keyed-min (UCS, Greedy, A*)
//----------------------------------------------------------------------------//

// minFrontier is an indexed min-heap over a per-algorithm key (g, h,
// or f). Ties among equal keys are broken by earliest insertion: each
// entry keeps the sequence number assigned when it first entered the
// frontier, and relaxation updates preserve it. Relaxation updates
// entries in place (lookup + fix) rather than pushing duplicates, so
// the frontier size and snapshots reflect exactly one entry per
// discovered-but-unexpanded node.
type minFrontier struct {
	key   func(n *node) int
	items []*node
	byID  map[string]*node
	seq   int
}

func newMinFrontier(key func(n *node) int) *minFrontier {
	return &minFrontier{
		key:  key,
		byID: make(map[string]*node),
	}
}

func (m *minFrontier) push(n *node) {
	n.seq = m.seq
	m.seq++
	m.byID[n.id] = n
	heap.Push((*minHeap)(m), n)
}

func (m *minFrontier) pop() *node {
	n := heap.Pop((*minHeap)(m)).(*node)
	delete(m.byID, n.id)

	return n
}

func (m *minFrontier) size() int { return len(m.items) }

func (m *minFrontier) ids() []string { return idsOf(m.items) }

// lookup returns the queued entry for id, if any.
func (m *minFrontier) lookup(id string) (*node, bool) {
	n, ok := m.byID[id]

	return n, ok
}

// fix restores heap order after n's key fields were updated in place.
func (m *minFrontier) fix(n *node) {
	heap.Fix((*minHeap)(m), n.idx)
}

// minHeap adapts minFrontier to heap.Interface. Kept as a separate
// named type so the exported-looking Push/Pop required by
// container/heap stay off the frontier surface.
type minHeap minFrontier

func (h *minHeap) Len() int { return len(h.items) }

func (h *minHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	ka, kb := h.key(a), h.key(b)
	if ka != kb {
		return ka < kb
	}

	return a.seq < b.seq
}

func (h *minHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].idx = i
	h.items[j].idx = j
}

func (h *minHeap) Push(x any) {
	n := x.(*node)
	n.idx = len(h.items)
	h.items = append(h.items, n)
}

func (h *minHeap) Pop() any {
	old := h.items
	last := len(old) - 1
	n := old[last]
	h.items = old[:last]

	return n
}

// idsOf extracts entry identifiers in container order.
func idsOf(items []*node) []string {
	out := make([]string, len(items))
	for i, n := range items {
		out[i] = n.id
	}

	return out
}
