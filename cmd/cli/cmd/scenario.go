package cmd

import (
	"fmt"
	"text/tabwriter"

	"derivatives-case-study/internal/data"
	"derivatives-case-study/internal/scenario"

	"github.com/spf13/cobra"
)

func newScenarioCmd() *cobra.Command {
	var (
		cf  contractFlags
		sf  scenarioFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Generate a monthly exchange-rate path",
		Long: `Generate a market scenario for the contract's duration.

The path can be saved as JSON and fed back to 'simulate --path'.

Example:
  stf scenario --pattern crisis_reversal --end 2.40 --out results/crisis.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cf.terms(cmd)
			if err != nil {
				return err
			}
			sf.apply(cmd, cfg)
			spec, err := cfg.ScenarioSpec()
			if err != nil {
				return err
			}
			path, err := scenario.Generate(spec)
			if err != nil {
				return err
			}

			info, _ := scenario.Describe(spec.Pattern)
			if out != "" {
				if err := data.SavePathJSON(out, &data.PathFile{Name: info.Title, Path: path}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d months)\n", out, len(path))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n\n", info.Title, info.Description)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "month\trate\t")
			for _, p := range path {
				fmt.Fprintf(w, "%d\t%s\t\n", p.Month, rate(p.Rate))
			}
			return w.Flush()
		},
	}
	cf.register(cmd)
	sf.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "write the path as JSON instead of printing it")
	return cmd
}
