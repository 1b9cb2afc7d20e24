package scenario

import (
	"fmt"
	"strings"
)

// Pattern names one of the monthly exchange-rate shapes.
// Keep these values stable; they are used in config files and API requests.
type Pattern string

const (
	GradualChange         Pattern = "gradual_change"
	SuddenShock           Pattern = "sudden_shock"
	PreCrisisAppreciation Pattern = "pre_crisis_appreciation"
	CrisisReversal        Pattern = "crisis_reversal"
)

// Patterns lists every pattern in display order.
var Patterns = []Pattern{GradualChange, SuddenShock, PreCrisisAppreciation, CrisisReversal}

// Info describes a pattern for catalogue listings.
type Info struct {
	Pattern     Pattern
	Title       string
	Description string
	UsesRates   bool // start/end rates shape the path
	UsesShock   bool // requires a shock month
}

var catalogue = map[Pattern]Info{
	GradualChange: {
		Pattern:     GradualChange,
		Title:       "Gradual Change",
		Description: "Linear move from the start rate to the end rate over the contract.",
		UsesRates:   true,
	},
	SuddenShock: {
		Pattern:     SuddenShock,
		Title:       "Sudden Shock",
		Description: "Start rate until the shock month, end rate from the shock month on.",
		UsesRates:   true,
		UsesShock:   true,
	},
	PreCrisisAppreciation: {
		Pattern:     PreCrisisAppreciation,
		Title:       "Typical Pre-2008 Pattern",
		Description: "Steady BRL appreciation from 2.20 to 1.60; ignores start/end rates.",
	},
	CrisisReversal: {
		Pattern:     CrisisReversal,
		Title:       "2008 Crisis Pattern",
		Description: "Slow 0.02/month appreciation, then a sharp depreciation to the end rate.",
		UsesRates:   true,
	},
}

// Describe returns catalogue information for p.
func Describe(p Pattern) (Info, bool) {
	info, ok := catalogue[p]
	return info, ok
}

// ParsePattern accepts the stable names plus the display titles
// ("Sudden Shock", "sudden-shock", ...).
func ParsePattern(s string) (Pattern, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	switch norm {
	case string(GradualChange), "gradual":
		return GradualChange, nil
	case string(SuddenShock), "shock":
		return SuddenShock, nil
	case string(PreCrisisAppreciation), "typical_pre_2008_pattern", "pre_2008":
		return PreCrisisAppreciation, nil
	case string(CrisisReversal), "2008_crisis_pattern", "crisis":
		return CrisisReversal, nil
	}
	return "", fmt.Errorf("unknown scenario pattern %q", s)
}
