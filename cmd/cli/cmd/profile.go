package cmd

import (
	"fmt"
	"text/tabwriter"

	"derivatives-case-study/internal/analysis"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	var (
		cf        contractFlags
		remaining float64
		center    float64
		low, high float64
		points    int
		risk      bool
	)
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Loss over a grid of exchange rates",
		Long: `Print the loss profile of a contract across exchange rates.

With --risk, print the introductory profile (strike 1.65, 12 months,
rates 1.40 to 2.40) instead.

Examples:
  stf profile --preset textbook --points 21
  stf profile --risk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p   *analysis.Profile
				err error
			)
			if risk {
				p, err = analysis.RiskProfile()
			} else {
				cfg, terms, terr := cf.terms(cmd)
				if terr != nil {
					return terr
				}
				months := float64(terms.DurationMonths)
				if cmd.Flags().Changed("months-remaining") {
					months = remaining
				}
				c := cfg.Contract.InitialRate
				if center != 0 {
					c = center
				}
				lo, hi := analysis.DefaultRange(c)
				if low != 0 {
					lo = low
				}
				if high != 0 {
					hi = high
				}
				p, err = analysis.LossProfile(terms, cfg.Contract.InitialRate, months, lo, hi, points)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Strike %s, %s months remaining\n", rate(p.Strike), decimalString(p.MonthsRemaining, 0))
			if be, ok := p.BreakEven(); ok {
				fmt.Fprintf(out, "Losses start at %s\n", rate(be))
			}
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "rate\tregime\tloss\t% notional\t")
			for _, pt := range p.Points {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", rate(pt.Rate), pt.Regime, money(pt.LossAmount), percent(pt.PercentageLoss))
			}
			return w.Flush()
		},
	}
	cf.register(cmd)
	fs := cmd.Flags()
	fs.Float64Var(&remaining, "months-remaining", 0, "months remaining (default: contract duration)")
	fs.Float64Var(&center, "current-rate", 0, "centre of the default grid (default: initial rate)")
	fs.Float64Var(&low, "low", 0, "lowest rate on the grid")
	fs.Float64Var(&high, "high", 0, "highest rate on the grid")
	fs.IntVar(&points, "points", analysis.DefaultProfilePoints, "number of grid points")
	fs.BoolVar(&risk, "risk", false, "print the introductory risk profile")
	return cmd
}
