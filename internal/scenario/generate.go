package scenario

import (
	"derivatives-case-study/internal/model"
)

// Fixed shape of the pre-crisis appreciation path (BRL/USD).
const (
	preCrisisHigh = 2.2
	preCrisisLow  = 1.6
)

// Crisis reversal constants: the split month for a 12-month contract and
// the per-month appreciation drift before the split.
const (
	crisisSplitMonth12 = 8
	crisisMonthlyDrift = 0.02
)

// Spec selects a pattern and its parameters.
// ShockMonth is only read for SuddenShock and must lie in [1, DurationMonths].
type Spec struct {
	Pattern        Pattern
	StartRate      float64
	EndRate        float64
	DurationMonths int
	ShockMonth     int
}

// Generate produces the monthly rate path for spec. The result always has
// DurationMonths points numbered 1..DurationMonths.
func Generate(spec Spec) (model.ScenarioPath, error) {
	n := spec.DurationMonths
	if n < 1 {
		return nil, model.InvalidInputf("duration_months must be >= 1, got %d", n)
	}

	var rate func(i int) float64
	switch spec.Pattern {
	case GradualChange:
		if err := checkRates(spec); err != nil {
			return nil, err
		}
		rate = func(i int) float64 { return interpolate(spec.StartRate, spec.EndRate, i, n) }
	case SuddenShock:
		if err := checkRates(spec); err != nil {
			return nil, err
		}
		if spec.ShockMonth < 1 || spec.ShockMonth > n {
			return nil, model.InvalidInputf("shock_month must be in [1, %d], got %d", n, spec.ShockMonth)
		}
		rate = func(i int) float64 {
			if i < spec.ShockMonth {
				return spec.StartRate
			}
			return spec.EndRate
		}
	case PreCrisisAppreciation:
		rate = func(i int) float64 { return interpolate(preCrisisHigh, preCrisisLow, i, n) }
	case CrisisReversal:
		if err := checkRates(spec); err != nil {
			return nil, err
		}
		rate = crisisReversal(spec.StartRate, spec.EndRate, n)
	default:
		return nil, model.InvalidInputf("unknown scenario pattern %q", spec.Pattern)
	}

	path := make(model.ScenarioPath, n)
	for i := 1; i <= n; i++ {
		r := rate(i)
		if err := model.RequirePositive("rate", r); err != nil {
			return nil, model.InvalidInputf("pattern %s produced a non-positive rate %v at month %d", spec.Pattern, r, i)
		}
		path[i-1] = model.MarketPoint{Month: i, Rate: r}
	}
	return path, nil
}

// CrisisSplitMonth is the last month of the slow-drift leg.
func CrisisSplitMonth(durationMonths int) int {
	if durationMonths == 12 {
		return crisisSplitMonth12
	}
	return 2 * durationMonths / 3
}

// DefaultShockMonth is the mid-contract month used when a caller leaves the
// shock month unset (month 6 of 12).
func DefaultShockMonth(durationMonths int) int {
	if durationMonths < 1 {
		return 1
	}
	return (durationMonths + 1) / 2
}

// interpolate maps month i in [1, n] linearly from a to b.
// A single-month path is just a.
func interpolate(a, b float64, i, n int) float64 {
	if n == 1 {
		return a
	}
	return a + (b-a)*float64(i-1)/float64(n-1)
}

func crisisReversal(start, end float64, n int) func(i int) float64 {
	k := CrisisSplitMonth(n)
	drift := func(i int) float64 { return start - crisisMonthlyDrift*float64(i-1) }
	base := start
	if k >= 1 {
		base = drift(k)
	}
	return func(i int) float64 {
		if i <= k {
			return drift(i)
		}
		return base + (end-base)*float64(i-k)/float64(n-k)
	}
}

func checkRates(spec Spec) error {
	if err := model.RequirePositive("start_rate", spec.StartRate); err != nil {
		return err
	}
	return model.RequirePositive("end_rate", spec.EndRate)
}
