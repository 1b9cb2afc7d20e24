// Package hedge implements the Bodnar–Marston optimal hedge ratio and the
// comparison of an actual hedge against it.
package hedge

import (
	"derivatives-case-study/internal/model"
)

// Inputs describes a firm's currency exposure.
// Shares and margin are fractions (0.25 means 25%); EBIT is in base currency.
type Inputs struct {
	ForeignRevenueShare float64 // h1
	ForeignCostShare    float64 // h2
	ProfitMargin        float64 // r = EBIT / revenue
	EBIT                float64
}

type Result struct {
	// HedgeRatio is δ. It is not clamped and may be negative or exceed 1.
	HedgeRatio         float64
	OptimalHedgeAmount float64
	PercentOfEBIT      float64
}

// ComputeOptimalHedge evaluates δ = h1 + (h1 - h2)(1/r - 1) and δ·EBIT.
// Any result overflowing float64 is ErrInvalidInput.
func ComputeOptimalHedge(h1, h2, r, ebit float64) (Result, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"foreign_revenue_share", h1}, {"foreign_cost_share", h2}, {"profit_margin", r}, {"ebit", ebit}} {
		if err := model.RequireFinite(f.name, f.v); err != nil {
			return Result{}, err
		}
	}
	if r == 0 {
		return Result{}, model.InvalidInputf("profit_margin must be non-zero")
	}

	delta := h1 + (h1-h2)*(1/r-1)
	if err := model.RequireFiniteResult("hedge_ratio", delta); err != nil {
		return Result{}, err
	}
	amount := delta * ebit
	if err := model.RequireFiniteResult("optimal_hedge_amount", amount); err != nil {
		return Result{}, err
	}
	pct := delta * 100
	if err := model.RequireFiniteResult("percent_of_ebit", pct); err != nil {
		return Result{}, err
	}
	return Result{
		HedgeRatio:         delta,
		OptimalHedgeAmount: amount,
		PercentOfEBIT:      pct,
	}, nil
}

// Compute is ComputeOptimalHedge over an Inputs value.
func Compute(in Inputs) (Result, error) {
	return ComputeOptimalHedge(in.ForeignRevenueShare, in.ForeignCostShare, in.ProfitMargin, in.EBIT)
}
