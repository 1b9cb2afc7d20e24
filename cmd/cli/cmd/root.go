package cmd

import (
	"context"
	"fmt"

	"derivatives-case-study/internal/logging"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X derivatives-case-study/cmd/cli/cmd.version=..."
var version = "dev"

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "stf",
		Short: "Sell target forward loss and hedging calculator",
		Long: `stf explores the risk of sell target forward contracts.

It provides tools for:
  - Whole-contract loss at a given exchange rate
  - Generating market scenarios and simulating monthly settlements
  - Comparing scenarios and loss profiles over a rate grid
  - Bodnar-Marston optimal hedge ratios and hedging stance`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := logging.Init(logging.Config{Level: logLevel, Format: "text", Output: "stderr"})
			return err
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newLossCmd(),
		newScenarioCmd(),
		newSimulateCmd(),
		newCompareCmd(),
		newProfileCmd(),
		newHedgeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stf %s\n", version)
		},
	}
}
