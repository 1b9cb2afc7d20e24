package cmd

import (
	"fmt"
	"text/tabwriter"

	"derivatives-case-study/internal/analysis"
	"derivatives-case-study/internal/scenario"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		cf contractFlags
		sf scenarioFlags
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Simulate every scenario pattern and rank them by total loss",
		Long: `Run all four scenario patterns against one contract.

Example:
  stf compare --preset textbook --end 2.00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, terms, err := cf.terms(cmd)
			if err != nil {
				return err
			}
			sf.apply(cmd, cfg)

			outcomes, err := analysis.CompareScenarios(cmd.Context(), analysis.CompareRequest{
				Terms:       terms,
				InitialRate: cfg.Contract.InitialRate,
				StartRate:   cfg.Scenario.StartRate,
				EndRate:     cfg.Scenario.EndRate,
				ShockMonth:  cfg.Scenario.ShockMonth,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "rank\tpattern\ttotal loss\t% notional\tworst month")
			for i, o := range outcomes {
				info, _ := scenario.Describe(o.Pattern)
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", i+1, info.Title, money(o.Result.TotalLoss), percent(o.Result.TotalLossPct), o.Result.MaxLossMonth)
			}
			return w.Flush()
		},
	}
	cf.register(cmd)
	sf.register(cmd)
	return cmd
}
