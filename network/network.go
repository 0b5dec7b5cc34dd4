package network

import (
	"github.com/katalvlaran/qcnet/calculus"
)

// Edge is one stored directed constraint of a Network.
type Edge struct {
	// From and To are the variable identifiers of the ordered pair.
	From, To string

	// Label is the stored constraint between From and To.
	Label calculus.Label
}

// Network is a symmetric labelling of variable pairs over one calculus.
//
// The zero value is not usable; construct with New. A Network is owned by
// a single goroutine at a time; see the package documentation.
type Network struct {
	calc  *calculus.Calculus
	order []string                             // variables in first-seen order
	seen  map[string]struct{}                  // membership for order
	edges map[string]map[string]calculus.Label // edges[i][j] = label of (i,j)
}

// New returns an empty Network over the given calculus.
// Panics if c is nil: a network without an algebra cannot maintain its
// converse symmetry invariant.
func New(c *calculus.Calculus) *Network {
	if c == nil {
		panic("network: New(nil calculus)")
	}

	return &Network{
		calc:  c,
		seen:  make(map[string]struct{}),
		edges: make(map[string]map[string]calculus.Label),
	}
}

// Calculus returns the algebra this network is labelled over.
func (n *Network) Calculus() *calculus.Calculus {
	return n.calc
}

// Lookup returns the stored label for the ordered pair (i, j), or the
// universe if no label is stored. Self-pairs are never consulted by the
// closure engines; Lookup(i, i) follows the same stored-or-universe rule.
//
// Complexity: O(1).
func (n *Network) Lookup(i, j string) calculus.Label {
	if row, ok := n.edges[i]; ok {
		if l, ok := row[j]; ok {
			return l
		}
	}

	return n.calc.Universe()
}

// Insert stores l for the ordered pair (i, j) and Converse(l) for (j, i).
// It is the only mutator, which is what guarantees the symmetry invariant.
// Inserting EmptyLabel is legal and records an inconsistency.
//
// Complexity: O(1) amortized.
func (n *Network) Insert(i, j string, l calculus.Label) {
	n.touch(i)
	n.touch(j)
	n.row(i)[j] = l
	if i != j {
		n.row(j)[i] = n.calc.Converse(l)
	}
}

// touch registers a variable in first-seen order.
func (n *Network) touch(v string) {
	if _, ok := n.seen[v]; !ok {
		n.seen[v] = struct{}{}
		n.order = append(n.order, v)
	}
}

func (n *Network) row(v string) map[string]calculus.Label {
	row, ok := n.edges[v]
	if !ok {
		row = make(map[string]calculus.Label)
		n.edges[v] = row
	}

	return row
}

// Nodes returns the variables mentioned by any stored edge, in first-seen
// order. The returned slice is a copy.
//
// Complexity: O(|nodes|).
func (n *Network) Nodes() []string {
	return append([]string(nil), n.order...)
}

// Edges returns every stored directed constraint, ordered by the
// first-seen position of From, then of To. Both directions of a stored
// pair appear.
//
// Complexity: O(|nodes|²).
func (n *Network) Edges() []Edge {
	out := make([]Edge, 0, len(n.order))
	for _, i := range n.order {
		row := n.edges[i]
		for _, j := range n.order {
			if l, ok := row[j]; ok {
				out = append(out, Edge{From: i, To: j, Label: l})
			}
		}
	}

	return out
}

// Clone returns a deep copy whose subsequent mutations do not affect n.
//
// Complexity: O(|nodes|²).
func (n *Network) Clone() *Network {
	out := &Network{
		calc:  n.calc,
		order: append([]string(nil), n.order...),
		seen:  make(map[string]struct{}, len(n.seen)),
		edges: make(map[string]map[string]calculus.Label, len(n.edges)),
	}
	for v := range n.seen {
		out.seen[v] = struct{}{}
	}
	for i, row := range n.edges {
		dst := make(map[string]calculus.Label, len(row))
		for j, l := range row {
			dst[j] = l
		}
		out.edges[i] = dst
	}

	return out
}

// OnlyBase reports whether every stored label is a base label (exactly one
// bit). Refinement search stops branching once this holds.
//
// Complexity: O(stored edges).
func (n *Network) OnlyBase() bool {
	for _, row := range n.edges {
		for _, l := range row {
			if !calculus.IsBase(l) {
				return false
			}
		}
	}

	return true
}
