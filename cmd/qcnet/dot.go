package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDotCmd returns the verb that renders instances as Graphviz DOT.
func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot [flags] CSP_FILE...",
		Short: "Render CSP instances as Graphviz DOT",
		Long: `Parses the given CSP files and writes one DOT digraph per instance to
stdout, edges labelled with their base relation sets. Pipe into
"dot -Tsvg" to draw.

	$ qcnet dot --calculus allen.txt instances.csp | dot -Tsvg -o net.svg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCalculus(cmd)
			if err != nil {
				return err
			}
			for _, path := range args {
				instances, err := loadInstances(c, path)
				if err != nil {
					return err
				}
				for _, inst := range instances {
					fmt.Printf("// %s\n%s\n", instanceName(inst), inst.Net.DOT())
				}
			}

			return nil
		},
	}
}
