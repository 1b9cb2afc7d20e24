package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"derivatives-case-study/internal/config"
	"derivatives-case-study/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// contractFlags resolves contract terms from, in increasing precedence:
// built-in defaults, --config, --preset, then explicit flags.
type contractFlags struct {
	configPath  string
	presetDir   string
	preset      string
	notional    float64
	strike      float64
	months      int
	initialRate float64
}

func (f *contractFlags) register(cmd *cobra.Command) {
	f.registerSource(cmd)
	fs := cmd.Flags()
	fs.Float64Var(&f.notional, "notional", 0, "notional in base currency")
	fs.Float64Var(&f.strike, "strike", 0, "strike rate (quote per base)")
	fs.IntVar(&f.months, "months", 0, "contract duration in months")
	fs.Float64Var(&f.initialRate, "initial-rate", 0, "spot rate at inception")
}

// registerSource registers only the file flags (--config, --preset).
func (f *contractFlags) registerSource(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file (see 'config init')")
	fs.StringVar(&f.presetDir, "preset-dir", "examples/contracts", "directory of contract presets")
	fs.StringVar(&f.preset, "preset", "", "contract preset id (e.g. textbook)")
}

// load returns the effective config with contract overrides applied.
// Scenario defaults are derived only after the overrides, so the default
// shock month follows --months rather than the file's duration. Each command
// validates the parts it uses.
func (f *contractFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.LoadUnchecked(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.preset != "" {
		preset, err := config.LoadPreset(config.ResolvePreset(f.presetDir, f.preset))
		if err != nil {
			return nil, err
		}
		cfg.Contract = preset.Contract
		if preset.Hedge != nil {
			cfg.Hedge = *preset.Hedge
		}
	}

	fs := cmd.Flags()
	if fs.Changed("notional") {
		cfg.Contract.Notional = f.notional
	}
	if fs.Changed("strike") {
		cfg.Contract.Strike = f.strike
	}
	if fs.Changed("months") {
		cfg.Contract.DurationMonths = f.months
	}
	if fs.Changed("initial-rate") {
		cfg.Contract.InitialRate = f.initialRate
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func (f *contractFlags) terms(cmd *cobra.Command) (*config.Config, model.ContractTerms, error) {
	cfg, err := f.load(cmd)
	if err != nil {
		return nil, model.ContractTerms{}, err
	}
	terms, err := cfg.Contract.ToModelTerms()
	if err != nil {
		return nil, model.ContractTerms{}, err
	}
	if err := model.RequirePositive("initial_rate", cfg.Contract.InitialRate); err != nil {
		return nil, model.ContractTerms{}, err
	}
	return cfg, terms, nil
}

// scenarioFlags override the config's scenario section.
type scenarioFlags struct {
	pattern   string
	startRate float64
	endRate   float64
	shock     int
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.pattern, "pattern", "", "scenario pattern (gradual_change, sudden_shock, pre_crisis_appreciation, crisis_reversal)")
	fs.Float64Var(&f.startRate, "start", 0, "scenario start rate (default: initial rate)")
	fs.Float64Var(&f.endRate, "end", 0, "scenario end rate")
	fs.IntVar(&f.shock, "shock-month", 0, "shock month for sudden_shock (default: mid-contract)")
}

func (f *scenarioFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("pattern") {
		cfg.Scenario.Pattern = f.pattern
	}
	if fs.Changed("start") {
		cfg.Scenario.StartRate = f.startRate
	}
	if fs.Changed("end") {
		cfg.Scenario.EndRate = f.endRate
	}
	if fs.Changed("shock-month") {
		cfg.Scenario.ShockMonth = f.shock
	}
	cfg.ApplyDefaults()
}

// money renders an amount with thousands separators and two decimals.
func money(x float64) string {
	s := decimal.NewFromFloat(x).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

func rate(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(4)
}

func decimalString(x float64, places int32) string {
	return decimal.NewFromFloat(x).StringFixed(places)
}

func percent(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2) + "%"
}

// ensureDir creates the parent directory of an output file.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
