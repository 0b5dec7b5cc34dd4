package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qcnet/builder"
)

// newGenerateCmd returns the verb that emits random CSP instances.
func newGenerateCmd() *cobra.Command {
	var (
		count int
		n     int
		d     float64
		l     float64
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "generate [flags]",
		Short: "Generate random CSP instances",
		Long: `Generates random instances A(n, d, l) over the given calculus and
writes them to stdout in the CSP instance format: each ordered pair of
distinct variables is constrained with probability d/(n-1), and each
base relation enters a label with probability l/k.

	$ qcnet generate --calculus allen.txt --count 10 -n 8 -d 4 -l 6.5 --seed 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCalculus(cmd)
			if err != nil {
				return err
			}
			instances, err := builder.RandomInstances(c, count, n, d, l, builder.WithSeed(seed))
			if err != nil {
				return err
			}

			return builder.Write(os.Stdout, instances...)
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "number of instances to generate")
	cmd.Flags().IntVarP(&n, "size", "n", 8, "number of variables per instance")
	cmd.Flags().Float64VarP(&d, "degree", "d", 4, "average number of constrained pairs per variable")
	cmd.Flags().Float64VarP(&l, "label-size", "l", 6.5, "average number of base relations per label")
	cmd.Flags().Int64Var(&seed, "seed", 1, "rng seed; equal seeds reproduce equal instances")

	return cmd
}
