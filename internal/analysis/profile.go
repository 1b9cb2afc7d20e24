package analysis

import (
	"math"

	"derivatives-case-study/internal/model"
)

// Default grid for exchange-rate profiles.
const DefaultProfilePoints = 100

// Introductory risk profile: a 12-month contract struck at 1.65 viewed over 1.40..2.40.
const (
	riskProfileStrike = 1.65
	riskProfileMonths = 12
	riskProfileLow    = 1.4
	riskProfileHigh   = 2.4
)

// ProfilePoint is the loss at one exchange rate.
type ProfilePoint struct {
	Rate           float64
	LossAmount     float64
	PercentageLoss float64
	Regime         model.Regime
}

type Profile struct {
	Strike          float64
	MonthsRemaining float64
	Low             float64
	High            float64
	Points          []ProfilePoint
}

// Linspace returns n evenly spaced values over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// DefaultRange is the grid around a current rate: [max(1, 0.7·S), 1.3·S].
func DefaultRange(currentRate float64) (lo, hi float64) {
	return math.Max(1.0, currentRate*0.7), currentRate * 1.3
}

// LossProfile evaluates both loss formulas over an evenly spaced rate grid.
func LossProfile(terms model.ContractTerms, initialRate, monthsRemaining, lo, hi float64, points int) (*Profile, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if err := model.RequirePositive("low", lo); err != nil {
		return nil, err
	}
	if err := model.RequirePositive("high", hi); err != nil {
		return nil, err
	}
	if hi <= lo {
		return nil, model.InvalidInputf("high (%v) must exceed low (%v)", hi, lo)
	}
	if points < 2 {
		return nil, model.InvalidInputf("points must be >= 2, got %d", points)
	}

	p := &Profile{
		Strike:          terms.Strike,
		MonthsRemaining: monthsRemaining,
		Low:             lo,
		High:            hi,
		Points:          make([]ProfilePoint, 0, points),
	}
	for _, rate := range Linspace(lo, hi, points) {
		res, err := model.EvaluateLoss(terms.Notional, initialRate, rate, terms.Strike, monthsRemaining)
		if err != nil {
			return nil, err
		}
		p.Points = append(p.Points, ProfilePoint{
			Rate:           rate,
			LossAmount:     res.LossAmount,
			PercentageLoss: res.PercentageLoss,
			Regime:         res.Regime,
		})
	}
	return p, nil
}

// RiskProfile is the percentage-loss curve used to introduce the product.
// Notional does not enter the percentage, so a unit notional is used.
func RiskProfile() (*Profile, error) {
	terms := model.ContractTerms{Notional: 1, Strike: riskProfileStrike, DurationMonths: riskProfileMonths}
	return LossProfile(terms, riskProfileStrike, riskProfileMonths, riskProfileLow, riskProfileHigh, DefaultProfilePoints)
}

// BreakEven returns the first grid rate with a positive loss, or false if
// the whole grid is in the no-loss regime.
func (p *Profile) BreakEven() (float64, bool) {
	for _, pt := range p.Points {
		if pt.LossAmount > 0 {
			return pt.Rate, true
		}
	}
	return 0, false
}
