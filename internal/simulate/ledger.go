package simulate

import "derivatives-case-study/internal/model"

// LedgerRow is one monthly settlement of a scenario simulation.
// MonthlyLoss and CumulativeLoss are non-negative magnitudes in base currency.
type LedgerRow struct {
	Month          int
	Rate           float64
	Regime         model.Regime
	MonthlyLoss    float64
	CumulativeLoss float64
}

type Result struct {
	Ledger []LedgerRow

	TotalLoss float64
	// TotalLossPct is TotalLoss as a percentage of notional.
	TotalLossPct float64

	// MaxMonthlyLoss is the largest single settlement; MaxLossMonth is the
	// first month it occurs (month 1 when every settlement is zero).
	MaxMonthlyLoss float64
	MaxLossMonth   int
}
