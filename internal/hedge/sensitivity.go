package hedge

import "derivatives-case-study/internal/model"

// Default margin grid for sensitivity curves: 5% to 50%.
const (
	DefaultMarginLow    = 0.05
	DefaultMarginHigh   = 0.50
	DefaultMarginPoints = 100
)

// SensitivityPoint is δ at one profit margin.
type SensitivityPoint struct {
	ProfitMargin float64
	HedgeRatio   float64
}

// MarginSensitivity evaluates δ for h1, h2 over an evenly spaced margin grid
// [lo, hi] with the given number of points. The grid must not contain 0.
func MarginSensitivity(h1, h2, lo, hi float64, points int) ([]SensitivityPoint, error) {
	if points < 2 {
		return nil, model.InvalidInputf("points must be >= 2, got %d", points)
	}
	if err := model.RequireFinite("low", lo); err != nil {
		return nil, err
	}
	if err := model.RequireFinite("high", hi); err != nil {
		return nil, err
	}
	if hi <= lo {
		return nil, model.InvalidInputf("high (%v) must exceed low (%v)", hi, lo)
	}
	if lo <= 0 && hi >= 0 {
		return nil, model.InvalidInputf("margin grid [%v, %v] spans zero", lo, hi)
	}

	out := make([]SensitivityPoint, 0, points)
	step := (hi - lo) / float64(points-1)
	for i := 0; i < points; i++ {
		r := lo + step*float64(i)
		if i == points-1 {
			r = hi
		}
		res, err := ComputeOptimalHedge(h1, h2, r, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, SensitivityPoint{ProfitMargin: r, HedgeRatio: res.HedgeRatio})
	}
	return out, nil
}
