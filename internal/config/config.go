package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"derivatives-case-study/internal/hedge"
	"derivatives-case-study/internal/model"
	"derivatives-case-study/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load contract terms from a preset (e.g. examples/contracts/*.yaml).
	// If both ContractFile and Contract are provided, Contract overrides ContractFile.
	ContractFile string         `yaml:"contract_file,omitempty"`
	Contract     ContractConfig `yaml:"contract"`
	Scenario     ScenarioConfig `yaml:"scenario"`
	Hedge        HedgeConfig    `yaml:"hedge"`
}

type ContractConfig struct {
	Name           string  `yaml:"name,omitempty" json:"name,omitempty"`
	Notional       float64 `yaml:"notional" json:"notional"`
	Strike         float64 `yaml:"strike" json:"strike"`
	DurationMonths int     `yaml:"duration_months" json:"duration_months"`
	InitialRate    float64 `yaml:"initial_rate" json:"initial_rate"`
}

type ScenarioConfig struct {
	Pattern    string  `yaml:"pattern"`
	StartRate  float64 `yaml:"start_rate,omitempty"`
	EndRate    float64 `yaml:"end_rate,omitempty"`
	ShockMonth int     `yaml:"shock_month,omitempty"`
}

type HedgeConfig struct {
	ForeignRevenueShare float64 `yaml:"foreign_revenue_share" json:"foreign_revenue_share"`
	ForeignCostShare    float64 `yaml:"foreign_cost_share" json:"foreign_cost_share"`
	ProfitMargin        float64 `yaml:"profit_margin" json:"profit_margin"`
	EBIT                float64 `yaml:"ebit" json:"ebit"`
	ActualHedge         float64 `yaml:"actual_hedge,omitempty" json:"actual_hedge,omitempty"`
}

// Default is the textbook contract with a typical exporter hedge profile.
func Default() *Config {
	return &Config{
		Contract: ContractConfig{
			Name:           "Textbook sell target forward",
			Notional:       15_000_000,
			Strike:         1.65,
			DurationMonths: 12,
			InitialRate:    1.60,
		},
		// Start rate and shock month are derived by ApplyDefaults.
		Scenario: ScenarioConfig{
			Pattern: string(scenario.GradualChange),
			EndRate: 2.00,
		},
		Hedge: HedgeConfig{
			ForeignRevenueShare: 0.95,
			ForeignCostShare:    0.25,
			ProfitMargin:        0.25,
			EBIT:                500_000_000,
			ActualHedge:         1_000_000_000,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.ContractFile != "" {
		presetPath := ResolvePreset(filepath.Dir(path), c.ContractFile)
		loaded, err := LoadContractFile(presetPath)
		if err != nil {
			return nil, err
		}
		c.Contract = MergeContract(loaded, c.Contract)
	}
	return &c, nil
}

// ResolvePreset turns a preset reference into a file path. Bare names get a
// .yaml suffix; relative paths are tried against dir first, then the cwd.
func ResolvePreset(dir, ref string) string {
	p := ref
	if filepath.Ext(p) == "" {
		p += ".yaml"
	}
	if filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(dir, p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

// ApplyDefaults fills scenario rates that were left unset: the start rate
// defaults to the contract's initial rate and the shock month to mid-contract.
func (c *Config) ApplyDefaults() {
	if c.Scenario.Pattern == "" {
		c.Scenario.Pattern = string(scenario.GradualChange)
	}
	if c.Scenario.StartRate == 0 {
		c.Scenario.StartRate = c.Contract.InitialRate
	}
	if c.Scenario.ShockMonth == 0 {
		c.Scenario.ShockMonth = scenario.DefaultShockMonth(c.Contract.DurationMonths)
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Contract.ToModelTerms(); err != nil {
		return fmt.Errorf("contract config invalid: %w", err)
	}
	if err := model.RequirePositive("contract.initial_rate", c.Contract.InitialRate); err != nil {
		return fmt.Errorf("contract config invalid: %w", err)
	}
	if _, err := c.ScenarioSpec(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if c.Hedge != (HedgeConfig{}) {
		if _, err := hedge.Compute(c.Hedge.ToInputs()); err != nil {
			return fmt.Errorf("hedge config invalid: %w", err)
		}
	}
	return nil
}

func (b ContractConfig) ToModelTerms() (model.ContractTerms, error) {
	return model.NewContractTerms(b.Notional, b.Strike, b.DurationMonths)
}

// ScenarioSpec builds the generator spec for the configured contract.
func (c *Config) ScenarioSpec() (scenario.Spec, error) {
	p, err := scenario.ParsePattern(c.Scenario.Pattern)
	if err != nil {
		return scenario.Spec{}, model.InvalidInputf("%v", err)
	}
	spec := scenario.Spec{
		Pattern:        p,
		StartRate:      c.Scenario.StartRate,
		EndRate:        c.Scenario.EndRate,
		DurationMonths: c.Contract.DurationMonths,
		ShockMonth:     c.Scenario.ShockMonth,
	}
	// Generating is cheap and surfaces every pattern-specific check.
	if _, err := scenario.Generate(spec); err != nil {
		return scenario.Spec{}, err
	}
	return spec, nil
}

func (h HedgeConfig) ToInputs() hedge.Inputs {
	return hedge.Inputs{
		ForeignRevenueShare: h.ForeignRevenueShare,
		ForeignCostShare:    h.ForeignCostShare,
		ProfitMargin:        h.ProfitMargin,
		EBIT:                h.EBIT,
	}
}

type contractFileWrapper struct {
	Contract ContractConfig `yaml:"contract"`
}

// LoadContractFile reads the contract section of a preset file.
func LoadContractFile(path string) (ContractConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ContractConfig{}, err
	}
	var w contractFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ContractConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return w.Contract, nil
}

// MergeContract overlays non-zero fields from override onto base.
// This is used when loading a preset and then applying overrides from the request.
func MergeContract(base, override ContractConfig) ContractConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Notional != 0 {
		out.Notional = override.Notional
	}
	if override.Strike != 0 {
		out.Strike = override.Strike
	}
	if override.DurationMonths != 0 {
		out.DurationMonths = override.DurationMonths
	}
	if override.InitialRate != 0 {
		out.InitialRate = override.InitialRate
	}
	return out
}

// MergeHedge overlays non-zero fields from override onto base.
func MergeHedge(base, override HedgeConfig) HedgeConfig {
	out := base
	if override.ForeignRevenueShare != 0 {
		out.ForeignRevenueShare = override.ForeignRevenueShare
	}
	if override.ForeignCostShare != 0 {
		out.ForeignCostShare = override.ForeignCostShare
	}
	if override.ProfitMargin != 0 {
		out.ProfitMargin = override.ProfitMargin
	}
	if override.EBIT != 0 {
		out.EBIT = override.EBIT
	}
	if override.ActualHedge != 0 {
		out.ActualHedge = override.ActualHedge
	}
	return out
}

// SaveToFile writes c as YAML, creating parent directories as needed.
func (c *Config) SaveToFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// PresetID derives a preset id from its file name ("aracruz_2008.yaml" -> "aracruz_2008").
func PresetID(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

// Preset is a named contract (and optionally a company hedge profile) stored as YAML.
type Preset struct {
	ID       string         `yaml:"-" json:"id"`
	Contract ContractConfig `yaml:"contract" json:"contract"`
	Hedge    *HedgeConfig   `yaml:"hedge,omitempty" json:"hedge,omitempty"`
}

func LoadPreset(path string) (Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	var p Preset
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Preset{}, fmt.Errorf("%s: %w", path, err)
	}
	p.ID = PresetID(path)
	if _, err := p.Contract.ToModelTerms(); err != nil {
		return Preset{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ListPresets loads every *.yaml preset in dir, sorted by id.
// A missing directory yields an empty list.
func ListPresets(dir string) ([]Preset, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	out := make([]Preset, 0, len(matches))
	for _, m := range matches {
		p, err := LoadPreset(m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
