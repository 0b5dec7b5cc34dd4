package builder

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/qcnet/network"
)

// Write serializes instances in the CSP file format consumed by
// network.ParseInstances: the info line, one "from to ( r1 … rn )" line
// per stored pair (emitted once, in first-seen orientation), and a "."
// terminator per instance.
//
// Complexity: O(instances · |nodes|² · k).
func Write(w io.Writer, instances ...*network.Instance) error {
	for _, inst := range instances {
		if _, err := fmt.Fprintln(w, inst.Info); err != nil {
			return fmt.Errorf("builder: write: %w", err)
		}

		nodes := inst.Net.Nodes()
		index := make(map[string]int, len(nodes))
		for pos, v := range nodes {
			index[v] = pos
		}
		for _, e := range inst.Net.Edges() {
			if index[e.From] > index[e.To] {
				continue // converse mirror; the parser re-creates it
			}
			names := inst.Net.Calculus().Decode(e.Label)
			if _, err := fmt.Fprintf(w, "%s %s ( %s )\n", e.From, e.To, strings.Join(names, " ")); err != nil {
				return fmt.Errorf("builder: write: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w, "."); err != nil {
			return fmt.Errorf("builder: write: %w", err)
		}
	}

	return nil
}
