package model

// LossResult is the outcome of the loss formulas at a single point in time.
// Both fields are non-negative magnitudes; LossAmount == 0 is the canonical
// "no loss" value, not a missing one.
type LossResult struct {
	LossAmount     float64 // base currency (USD)
	PercentageLoss float64 // percent of notional
	Regime         Regime
}

// settlementFactor is the combined linear exposure of the short NDF and the
// short option leg.
const settlementFactor = 2

// ComputeLoss returns the loss magnitude in base currency:
//
//	l = n * 2t * (X - S) / S
//
// initialRate must be finite and positive, but past that check it does not
// enter the formula: any valid initialRate yields the same loss. A result
// that overflows float64 is reported as ErrInvalidInput.
func ComputeLoss(notional, initialRate, currentRate, strike, monthsRemaining float64) (float64, error) {
	if err := RequirePositive("notional", notional); err != nil {
		return 0, err
	}
	if err := RequirePositive("initial_rate", initialRate); err != nil {
		return 0, err
	}
	if err := checkRateInputs(currentRate, strike, monthsRemaining); err != nil {
		return 0, err
	}
	if currentRate <= strike {
		return 0, nil
	}

	lossQuote := notional * settlementFactor * monthsRemaining * (strike - currentRate)
	lossBase := lossQuote / currentRate
	if err := RequireFiniteResult("loss", lossBase); err != nil {
		return 0, err
	}
	return -lossBase, nil
}

// ComputePercentageLoss returns the loss as a percentage of notional:
//
//	Dp = 2t * (X - S) * 100 / S
func ComputePercentageLoss(currentRate, strike, monthsRemaining float64) (float64, error) {
	if err := checkRateInputs(currentRate, strike, monthsRemaining); err != nil {
		return 0, err
	}
	if currentRate <= strike {
		return 0, nil
	}

	pct := settlementFactor * monthsRemaining * (strike - currentRate) * 100 / currentRate
	if err := RequireFiniteResult("percentage_loss", pct); err != nil {
		return 0, err
	}
	return -pct, nil
}

// EvaluateLoss runs both formulas for one point in time.
func EvaluateLoss(notional, initialRate, currentRate, strike, monthsRemaining float64) (LossResult, error) {
	amount, err := ComputeLoss(notional, initialRate, currentRate, strike, monthsRemaining)
	if err != nil {
		return LossResult{}, err
	}
	pct, err := ComputePercentageLoss(currentRate, strike, monthsRemaining)
	if err != nil {
		return LossResult{}, err
	}
	return LossResult{
		LossAmount:     amount,
		PercentageLoss: pct,
		Regime:         RegimeFromRates(currentRate, strike),
	}, nil
}

func checkRateInputs(currentRate, strike, monthsRemaining float64) error {
	if err := RequirePositive("current_rate", currentRate); err != nil {
		return err
	}
	if err := RequirePositive("strike", strike); err != nil {
		return err
	}
	return RequireNonNegative("months_remaining", monthsRemaining)
}
