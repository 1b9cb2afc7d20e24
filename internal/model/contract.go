package model

// ContractTerms defines a sell target forward position.
// Units:
// - Notional: base currency (USD)
// - Strike: quote per base (BRL/USD)
// - DurationMonths: monthly settlements, >= 1
type ContractTerms struct {
	Notional       float64
	Strike         float64
	DurationMonths int
}

func NewContractTerms(notional, strike float64, durationMonths int) (ContractTerms, error) {
	t := ContractTerms{
		Notional:       notional,
		Strike:         strike,
		DurationMonths: durationMonths,
	}
	if err := t.Validate(); err != nil {
		return ContractTerms{}, err
	}
	return t, nil
}

func (t ContractTerms) Validate() error {
	if err := RequirePositive("notional", t.Notional); err != nil {
		return err
	}
	if err := RequirePositive("strike", t.Strike); err != nil {
		return err
	}
	if t.DurationMonths < 1 {
		return InvalidInputf("duration_months must be >= 1, got %d", t.DurationMonths)
	}
	return nil
}

// MonthsRemaining converts elapsed months into the remaining count used by
// the whole-contract formula.
func (t ContractTerms) MonthsRemaining(monthsElapsed int) (int, error) {
	if monthsElapsed < 0 || monthsElapsed > t.DurationMonths {
		return 0, InvalidInputf("months_elapsed must be in [0, %d], got %d", t.DurationMonths, monthsElapsed)
	}
	return t.DurationMonths - monthsElapsed, nil
}
