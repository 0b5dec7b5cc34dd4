package closure

import (
	"container/heap"

	"github.com/katalvlaran/qcnet/calculus"
	"github.com/katalvlaran/qcnet/network"
)

// edgeItem is a heap entry: an ordered pair with the popcount of its
// label at enqueue time. Entries are never updated in place; a tightened
// pair is pushed again and the stale entry processed harmlessly later
// (lazy decrease-key, as in heap-based shortest-path implementations).
type edgeItem struct {
	prio int
	pair pair
}

// edgeHeap is a min-heap of edgeItem by priority.
type edgeHeap []edgeItem

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(a, b int) bool  { return h[a].prio < h[b].prio }
func (h edgeHeap) Swap(a, b int)       { h[a], h[b] = h[b], h[a] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(edgeItem)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// closePriority is the Queue engine with a min-heap working set keyed by
// label popcount at enqueue time: tighter (more informative) edges
// propagate first. Stale entries for a pair whose label tightened after
// enqueueing are safe because the triangle step is idempotent when its
// inputs have not changed.
func closePriority(net *network.Network) bool {
	c := net.Calculus()
	nodes := net.Nodes()

	h := make(edgeHeap, 0, len(nodes)*(len(nodes)-1))
	for _, i := range nodes {
		for _, j := range nodes {
			if i != j {
				h = append(h, edgeItem{prio: calculus.Count(net.Lookup(i, j)), pair: pair{i, j}})
			}
		}
	}
	heap.Init(&h)

	for h.Len() > 0 {
		p := heap.Pop(&h).(edgeItem).pair
		i, j := p.i, p.j

		for _, k := range nodes {
			if k == i || k == j {
				continue
			}
			cij := net.Lookup(i, j)

			cik := net.Lookup(i, k)
			newik := cik & c.Compose(cij, net.Lookup(j, k))
			if newik != cik {
				if newik == calculus.EmptyLabel {
					return false
				}
				net.Insert(i, k, newik)
				heap.Push(&h, edgeItem{prio: calculus.Count(newik), pair: pair{i, k}})
			}

			ckj := net.Lookup(k, j)
			newkj := ckj & c.Compose(net.Lookup(k, i), cij)
			if newkj != ckj {
				if newkj == calculus.EmptyLabel {
					return false
				}
				net.Insert(k, j, newkj)
				heap.Push(&h, edgeItem{prio: calculus.Count(newkj), pair: pair{k, j}})
			}
		}
	}

	return true
}
