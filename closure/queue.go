package closure

import (
	"github.com/katalvlaran/qcnet/calculus"
	"github.com/katalvlaran/qcnet/network"
)

// closeQueue is the PC-2 style engine. The FIFO is seeded with every
// ordered pair of distinct variables; dequeuing (i,j) re-checks, for every
// third variable k, the forward refinement of (i,k) through j and the
// backward refinement of (k,j) through i. Tightened pairs re-enter the
// queue; an empty label ends the run immediately.
func closeQueue(net *network.Network) bool {
	c := net.Calculus()
	nodes := net.Nodes()

	fifo := make([]pair, 0, len(nodes)*(len(nodes)-1))
	for _, i := range nodes {
		for _, j := range nodes {
			if i != j {
				fifo = append(fifo, pair{i, j})
			}
		}
	}

	for len(fifo) > 0 {
		p := fifo[0]
		fifo = fifo[1:]
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
				fifo = append(fifo, pair{i, k})
			}

			ckj := net.Lookup(k, j)
			newkj := ckj & c.Compose(net.Lookup(k, i), cij)
			if newkj != ckj {
				if newkj == calculus.EmptyLabel {
					return false
				}
				net.Insert(k, j, newkj)
				fifo = append(fifo, pair{k, j})
			}
		}
	}

	return true
}
