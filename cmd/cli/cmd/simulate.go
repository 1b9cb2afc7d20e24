package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"derivatives-case-study/internal/data"
	"derivatives-case-study/internal/id"
	"derivatives-case-study/internal/model"
	"derivatives-case-study/internal/scenario"
	"derivatives-case-study/internal/simulate"

	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		cf         contractFlags
		sf         scenarioFlags
		pathFile   string
		historical bool
		outCSV     string
		quiet      bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Settle a contract month by month along a rate path",
		Long: `Run the monthly settlement simulation.

The rate path comes from --path (JSON), --historical (BRL/USD 2008) or the
configured scenario, in that order.

Examples:
  stf simulate --preset textbook --pattern sudden_shock --end 2.00
  stf simulate --preset aracruz_2008 --historical --out results/aracruz.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pathFile != "" && historical {
				return model.InvalidInputf("--path and --historical are mutually exclusive")
			}
			cfg, terms, err := cf.terms(cmd)
			if err != nil {
				return err
			}

			var (
				path   model.ScenarioPath
				source string
			)
			switch {
			case pathFile != "":
				pf, err := data.LoadPathJSON(pathFile)
				if err != nil {
					return err
				}
				path, source = pf.Path, pathFile
				if pf.Name != "" {
					source = pf.Name
				}
			case historical:
				path, source = data.Historical2008(), data.Historical2008Label
			default:
				sf.apply(cmd, cfg)
				spec, err := cfg.ScenarioSpec()
				if err != nil {
					return err
				}
				if path, err = scenario.Generate(spec); err != nil {
					return err
				}
				info, _ := scenario.Describe(spec.Pattern)
				source = info.Title
			}

			res, err := simulate.New().Run(terms, cfg.Contract.InitialRate, path)
			if err != nil {
				return err
			}
			runID, createdAt := id.NewStamped()
			slog.Info("simulation completed", "id", runID, "source", source, "months", len(res.Ledger))

			if outCSV != "" {
				if err := ensureDir(outCSV); err != nil {
					return err
				}
				if err := simulate.WriteLedgerCSV(outCSV, res.Ledger); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s (%s): %s\n\n", runID, createdAt.Format(time.RFC3339), source)
			if !quiet {
				if err := printLedger(out, res.Ledger); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			printSummary(out, terms, res)
			if outCSV != "" {
				fmt.Fprintf(out, "\nLedger written to %s\n", outCSV)
			}
			return nil
		},
	}
	cf.register(cmd)
	sf.register(cmd)
	cmd.Flags().StringVar(&pathFile, "path", "", "rate path JSON file")
	cmd.Flags().BoolVar(&historical, "historical", false, "use the 2008 BRL/USD path")
	cmd.Flags().StringVar(&outCSV, "out", "", "write the ledger as CSV")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print the summary only")
	return cmd
}

func printLedger(out io.Writer, ledger []simulate.LedgerRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "month\trate\tregime\tmonthly loss\tcumulative\t")
	for _, r := range ledger {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n", r.Month, rate(r.Rate), r.Regime, money(r.MonthlyLoss), money(r.CumulativeLoss))
	}
	return w.Flush()
}

func printSummary(out io.Writer, terms model.ContractTerms, res *simulate.Result) {
	fmt.Fprintf(out, "Total loss:       %s (%s of notional %s)\n", money(res.TotalLoss), percent(res.TotalLossPct), money(terms.Notional))
	fmt.Fprintf(out, "Max monthly loss: %s (month %d)\n", money(res.MaxMonthlyLoss), res.MaxLossMonth)
}
