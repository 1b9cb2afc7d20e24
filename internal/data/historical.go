package data

import "derivatives-case-study/internal/model"

// Month-end BRL/USD, January to December 2008.
var brlUSD2008 = []float64{1.77, 1.73, 1.75, 1.69, 1.63, 1.61, 1.57, 1.63, 1.91, 2.18, 2.33, 2.34}

// Historical2008Label names the historical path in listings and reports.
const Historical2008Label = "BRL/USD 2008"

// Historical2008 returns the 2008 BRL/USD path as a 12-month scenario.
// The returned slice is a fresh copy.
func Historical2008() model.ScenarioPath {
	return model.PathFromRates(brlUSD2008)
}
