package simulate

import (
	"fmt"

	"derivatives-case-study/internal/model"
)

// settlementMonths is the months-remaining argument used for every monthly
// settlement in a scenario run. Each month is settled as if it were the last.
const settlementMonths = 1

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run settles every month of path against terms and accumulates the losses.
// The path must cover exactly terms.DurationMonths months numbered from 1.
func (e *Engine) Run(terms model.ContractTerms, initialRate float64, path model.ScenarioPath) (*Result, error) {
	in := model.SimulationInputs{Terms: terms, InitialRate: initialRate, Path: path}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ledger := make([]LedgerRow, 0, len(path))
	cum := 0.0
	maxLoss, maxMonth := 0.0, path[0].Month

	for _, pt := range path {
		loss, err := model.ComputeLoss(terms.Notional, initialRate, pt.Rate, terms.Strike, settlementMonths)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", pt.Month, err)
		}
		cum += loss
		if err := model.RequireFiniteResult("cumulative_loss", cum); err != nil {
			return nil, fmt.Errorf("month %d: %w", pt.Month, err)
		}
		if loss > maxLoss {
			maxLoss, maxMonth = loss, pt.Month
		}

		ledger = append(ledger, LedgerRow{
			Month:          pt.Month,
			Rate:           pt.Rate,
			Regime:         model.RegimeFromRates(pt.Rate, terms.Strike),
			MonthlyLoss:    loss,
			CumulativeLoss: cum,
		})
	}

	return &Result{
		Ledger:         ledger,
		TotalLoss:      cum,
		TotalLossPct:   cum / terms.Notional * 100,
		MaxMonthlyLoss: maxLoss,
		MaxLossMonth:   maxMonth,
	}, nil
}

// WholeContract is a single-point-in-time evaluation of the full remaining
// exposure, used when exploring current rate and elapsed months directly.
type WholeContract struct {
	model.LossResult

	MonthsRemaining int
	// LossMultiple is LossAmount / notional.
	LossMultiple float64
	// RateChangePct is the move from the initial rate, positive when the
	// quote currency depreciates.
	RateChangePct float64
}

// SimulateWholeContract evaluates both loss formulas with the full
// monthsRemaining count, without a monthly breakdown.
func SimulateWholeContract(terms model.ContractTerms, initialRate, currentRate float64, monthsRemaining int) (model.LossResult, error) {
	if err := terms.Validate(); err != nil {
		return model.LossResult{}, err
	}
	if monthsRemaining < 0 || monthsRemaining > terms.DurationMonths {
		return model.LossResult{}, model.InvalidInputf("months_remaining must be in [0, %d], got %d", terms.DurationMonths, monthsRemaining)
	}
	return model.EvaluateLoss(terms.Notional, initialRate, currentRate, terms.Strike, float64(monthsRemaining))
}

// ExploreWholeContract is SimulateWholeContract driven by elapsed months,
// with the derived figures shown next to the loss.
func ExploreWholeContract(terms model.ContractTerms, initialRate, currentRate float64, monthsElapsed int) (*WholeContract, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	remaining, err := terms.MonthsRemaining(monthsElapsed)
	if err != nil {
		return nil, err
	}
	res, err := SimulateWholeContract(terms, initialRate, currentRate, remaining)
	if err != nil {
		return nil, err
	}
	change := (currentRate - initialRate) / initialRate * 100
	if err := model.RequireFiniteResult("rate_change_pct", change); err != nil {
		return nil, err
	}
	return &WholeContract{
		LossResult:      res,
		MonthsRemaining: remaining,
		LossMultiple:    res.LossAmount / terms.Notional,
		RateChangePct:   change,
	}, nil
}

// ChangeDirection labels a rate move from the quote currency's side.
func ChangeDirection(rateChangePct float64) string {
	switch {
	case rateChangePct > 0:
		return "depreciation"
	case rateChangePct < 0:
		return "appreciation"
	default:
		return "unchanged"
	}
}
