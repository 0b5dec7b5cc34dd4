package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qcnet/network"
	"github.com/katalvlaran/qcnet/refine"
)

// newRefineCmd returns the verb that decides full consistency of every
// instance by refinement search.
func newRefineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refine [flags] CSP_FILE...",
		Short: "Decide consistency of CSP instances by refinement search",
		Long: `Runs refinement search (algebraic closure plus backtracking over base
relation splits) over every instance of the given CSP files. Verdicts
are checked against oracle tags exactly as in "qcnet closure".

	$ qcnet refine --calculus allen.txt instances.csp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := engineFlag(cmd)
			if err != nil {
				return err
			}

			return runInstances(cmd, args, func(inst *network.Instance) (bool, error) {
				return refine.Refine(inst.Net, refine.WithEngine(engine))
			})
		},
	}

	cmd.Flags().String("engine", "pq", "closure engine used inside the search: naive, queue or pq")

	return cmd
}
