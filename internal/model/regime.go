package model

// Regime describes which side of the strike a spot rate sits on.
// Keep these values stable; they are intended for CSV and JSON output.
type Regime string

const (
	RegimeNoLoss Regime = "NO_LOSS"
	RegimeLoss   Regime = "LOSS"
)

// RegimeFromRates classifies a spot rate against the strike.
// At or below the strike the seller is in the money and no loss is modeled.
func RegimeFromRates(currentRate, strike float64) Regime {
	if currentRate <= strike {
		return RegimeNoLoss
	}
	return RegimeLoss
}
