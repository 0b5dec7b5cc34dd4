// Package closure enforces algebraic closure (path consistency) on a
// qualitative constraint network by triangle refinement:
//
//	L(i,k) := L(i,k) ∩ Compose(L(i,j), L(j,k))
//
// applied to triples of distinct variables until a fixed point is reached
// or some label becomes empty. The network is tightened in place; the
// verdict is false exactly when an empty label was derived.
//
// Three engines are provided, selected by the Engine enum:
//
//   - Naive:         repeated full passes over every ordered triple until
//     a pass makes no change (PC-1 style). O(n⁵·k) worst case, trivially
//     correct; the reference the other two are measured against.
//   - Queue:         a FIFO of ordered pairs, seeded with every pair;
//     dequeuing (i,j) re-checks both the forward (i,k) and backward (k,j)
//     refinements for every third variable k (PC-2 style).
//   - PriorityQueue: as Queue, but the working set is a min-heap keyed by
//     the popcount of the pair's label at enqueue time, so the most
//     informative edges propagate first. Stale duplicate entries are
//     tolerated: the triangle step is idempotent on unchanged labels.
//
// All three engines preserve the network's symmetry invariant (they
// mutate only through Insert) and tighten monotonically (every new label
// is a subset of the old one). On the same input they reach the same
// greatest fixpoint and therefore the same verdict; only the order of
// intermediate tightenings differs.
//
// Engines never return errors once dispatch succeeds: an empty label is
// data (an inconsistent network), not a failure.
package closure
