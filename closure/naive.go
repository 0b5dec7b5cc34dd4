package closure

import (
	"github.com/katalvlaran/qcnet/calculus"
	"github.com/katalvlaran/qcnet/network"
)

// closeNaive is the PC-1 style engine: iterate every ordered triple of
// distinct variables, apply the triangle refinement, and repeat full
// passes until one completes without a change.
//
// Termination: every applied refinement strictly reduces the popcount of
// some label, labels are bounded below by the empty label, and the node
// set is finite, so at most |nodes|²·k tightenings occur.
func closeNaive(net *network.Network) bool {
	c := net.Calculus()
	nodes := net.Nodes()

	for changed := true; changed; {
		changed = false
		for _, i := range nodes {
			for _, j := range nodes {
				if j == i {
					continue
				}
				for _, k := range nodes {
					if k == i || k == j {
						continue
					}
					cik := net.Lookup(i, k)
					newik := cik & c.Compose(net.Lookup(i, j), net.Lookup(j, k))
					if newik == cik {
						continue
					}
					net.Insert(i, k, newik)
					if newik == calculus.EmptyLabel {
						return false
					}
					changed = true
				}
			}
		}
	}

	return true
}
