package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qcnet/closure"
	"github.com/katalvlaran/qcnet/network"
)

// newClosureCmd returns the verb that runs algebraic closure over every
// instance of the given CSP files.
func newClosureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closure [flags] CSP_FILE...",
		Short: "Run algebraic closure (path consistency) over CSP instances",
		Long: `Runs the selected closure engine over every instance of the given CSP
files and prints one verdict line per instance. When an instance's info
line carries a ": consistent" or ": not consistent" tag, the verdict is
checked against it; the command exits nonzero if any verdict disagrees.

	$ qcnet closure --calculus allen.txt --engine pq instances.csp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := engineFlag(cmd)
			if err != nil {
				return err
			}

			return runInstances(cmd, args, func(inst *network.Instance) (bool, error) {
				return closure.Close(inst.Net, engine)
			})
		},
	}

	cmd.Flags().String("engine", closure.PriorityQueue.String(), "closure engine: naive, queue or pq")

	return cmd
}
