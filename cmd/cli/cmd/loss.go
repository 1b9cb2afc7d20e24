package cmd

import (
	"fmt"
	"text/tabwriter"

	"derivatives-case-study/internal/simulate"

	"github.com/spf13/cobra"
)

func newLossCmd() *cobra.Command {
	var (
		cf      contractFlags
		current float64
		elapsed int
	)
	cmd := &cobra.Command{
		Use:   "loss",
		Short: "Whole-contract loss at a given exchange rate",
		Long: `Evaluate the full remaining exposure of a contract at one exchange rate.

Example:
  stf loss --preset textbook --rate 2.00 --elapsed 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, terms, err := cf.terms(cmd)
			if err != nil {
				return err
			}
			wc, err := simulate.ExploreWholeContract(terms, cfg.Contract.InitialRate, current, elapsed)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Strike\t%s\n", rate(terms.Strike))
			fmt.Fprintf(w, "Current rate\t%s\n", rate(current))
			fmt.Fprintf(w, "Rate change\t%s (%s)\n", percent(wc.RateChangePct), simulate.ChangeDirection(wc.RateChangePct))
			fmt.Fprintf(w, "Months remaining\t%d\n", wc.MonthsRemaining)
			fmt.Fprintf(w, "Regime\t%s\n", wc.Regime)
			fmt.Fprintf(w, "Loss\t%s\n", money(wc.LossAmount))
			fmt.Fprintf(w, "Loss (%% of notional)\t%s\n", percent(wc.PercentageLoss))
			fmt.Fprintf(w, "Loss multiple\t%sx\n", decimalString(wc.LossMultiple, 2))
			return w.Flush()
		},
	}
	cf.register(cmd)
	cmd.Flags().Float64Var(&current, "rate", 0, "current exchange rate (required)")
	cmd.Flags().IntVar(&elapsed, "elapsed", 0, "months elapsed since inception")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}
