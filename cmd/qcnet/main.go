// Command qcnet is the driver for the qualitative constraint reasoner:
// it loads a calculus, parses CSP instance files, and runs algebraic
// closure or refinement search over every instance, checking the verdict
// against the oracle tag when one is present.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qcnet",
		Short: "qualitative constraint reasoning over binary relation networks",
		Long: `qcnet loads a qualitative calculus (base relations plus converse and
composition tables) and reasons over constraint networks: algebraic
closure (path consistency) with a choice of three engines, and full
consistency via refinement search.`,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("calculus", "", "path to the calculus description file")

	rootCmd.AddCommand(newClosureCmd())
	rootCmd.AddCommand(newRefineCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newDotCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
