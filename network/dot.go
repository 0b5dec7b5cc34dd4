package network

import (
	"strings"

	"github.com/emicklei/dot"
)

// DOT renders the stored constraints as a Graphviz digraph for human
// inspection. Each stored pair appears once, in the direction of its
// first-seen endpoints, labelled with the decoded base relation names;
// the converse direction is implied by the symmetry invariant.
//
// Complexity: O(|nodes|² · k).
func (n *Network) DOT() string {
	g := dot.NewGraph(dot.Directed)

	index := make(map[string]int, len(n.order))
	for pos, v := range n.order {
		index[v] = pos
		g.Node(v)
	}
	for _, e := range n.Edges() {
		if index[e.From] > index[e.To] {
			continue // converse duplicate of an already-emitted pair
		}
		label := "{" + strings.Join(n.calc.Decode(e.Label), " ") + "}"
		g.Edge(g.Node(e.From), g.Node(e.To)).Attr("label", label)
	}

	return g.String()
}
