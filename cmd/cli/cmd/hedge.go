package cmd

import (
	"fmt"
	"text/tabwriter"

	"derivatives-case-study/internal/hedge"

	"github.com/spf13/cobra"
)

func newHedgeCmd() *cobra.Command {
	var (
		cf          contractFlags
		h1, h2      float64
		margin      float64
		ebit        float64
		actual      float64
		sensitivity bool
	)
	cmd := &cobra.Command{
		Use:   "hedge",
		Short: "Bodnar-Marston optimal hedge and hedging stance",
		Long: `Compute the optimal hedge ratio δ = h1 + (h1 - h2)(1/r - 1) and δ·EBIT.

Shares and margin are fractions. When an actual hedge is known (from the
flags or the preset) it is classified against the optimal amount.

Examples:
  stf hedge --h1 0.95 --h2 0.25 --margin 0.25 --ebit 500e6
  stf hedge --preset aracruz_2008
  stf hedge --preset aracruz_2008 --sensitivity`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.load(cmd)
			if err != nil {
				return err
			}
			hc := cfg.Hedge
			fs := cmd.Flags()
			if fs.Changed("h1") {
				hc.ForeignRevenueShare = h1
			}
			if fs.Changed("h2") {
				hc.ForeignCostShare = h2
			}
			if fs.Changed("margin") {
				hc.ProfitMargin = margin
			}
			if fs.Changed("ebit") {
				hc.EBIT = ebit
			}
			if fs.Changed("actual") {
				hc.ActualHedge = actual
			}

			out := cmd.OutOrStdout()
			if sensitivity {
				grid, err := hedge.MarginSensitivity(hc.ForeignRevenueShare, hc.ForeignCostShare,
					hedge.DefaultMarginLow, hedge.DefaultMarginHigh, hedge.DefaultMarginPoints)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
				fmt.Fprintln(w, "margin\tδ\t")
				for _, p := range grid {
					fmt.Fprintf(w, "%s\t%s\t\n", percent(p.ProfitMargin*100), decimalString(p.HedgeRatio, 4))
				}
				return w.Flush()
			}

			res, err := hedge.Compute(hc.ToInputs())
			if err != nil {
				return err
			}
			var cmp *hedge.Comparison
			if hc.ActualHedge != 0 {
				c, err := hedge.Compare(hc.ActualHedge, res.OptimalHedgeAmount)
				if err != nil {
					return err
				}
				cmp = &c
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Optimal hedge ratio (δ)\t%s\n", decimalString(res.HedgeRatio, 2))
			fmt.Fprintf(w, "Optimal hedge amount\t%s\n", money(res.OptimalHedgeAmount))
			fmt.Fprintf(w, "As %% of EBIT\t%s\n", percent(res.PercentOfEBIT))
			if cmp != nil {
				fmt.Fprintf(w, "Actual hedge\t%s\n", money(cmp.ActualHedge))
				fmt.Fprintf(w, "Actual / optimal\t%sx\n", decimalString(cmp.Ratio, 2))
				fmt.Fprintf(w, "Stance\t%s\n", cmp.Stance.Label())
			}
			return w.Flush()
		},
	}
	cf.registerSource(cmd)
	fs := cmd.Flags()
	fs.Float64Var(&h1, "h1", 0, "foreign-currency share of revenue")
	fs.Float64Var(&h2, "h2", 0, "foreign-currency share of costs")
	fs.Float64Var(&margin, "margin", 0, "profit margin (EBIT / revenue)")
	fs.Float64Var(&ebit, "ebit", 0, "EBIT in base currency")
	fs.Float64Var(&actual, "actual", 0, "actual hedge in base currency")
	fs.BoolVar(&sensitivity, "sensitivity", false, "print δ across profit margins of 5% to 50%")
	return cmd
}
