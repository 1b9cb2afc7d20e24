package model

import "fmt"

// MarketPoint is the spot rate observed at one monthly settlement.
type MarketPoint struct {
	Month int     `json:"month"`
	Rate  float64 `json:"rate"`
}

// ScenarioPath is an ordered sequence of monthly spot rates, months 1..n.
type ScenarioPath []MarketPoint

// Validate checks that the path is non-empty, that months run exactly
// 1..len(p) in order and that every rate is finite and positive.
func (p ScenarioPath) Validate() error {
	if len(p) == 0 {
		return PreconditionViolationf("scenario path is empty")
	}
	for i, pt := range p {
		if pt.Month != i+1 {
			return PreconditionViolationf("scenario path month at position %d is %d, want %d", i, pt.Month, i+1)
		}
		if err := RequirePositive("rate", pt.Rate); err != nil {
			return fmt.Errorf("month %d: %w", pt.Month, err)
		}
	}
	return nil
}

// Rates returns the spot rates in month order.
func (p ScenarioPath) Rates() []float64 {
	out := make([]float64, len(p))
	for i, pt := range p {
		out[i] = pt.Rate
	}
	return out
}

// PathFromRates numbers rates as months 1..len(rates).
func PathFromRates(rates []float64) ScenarioPath {
	out := make(ScenarioPath, len(rates))
	for i, r := range rates {
		out[i] = MarketPoint{Month: i + 1, Rate: r}
	}
	return out
}
