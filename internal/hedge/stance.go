package hedge

import "derivatives-case-study/internal/model"

// Stance buckets an actual hedge relative to the optimal one.
// Keep these values stable; they are intended for JSON output.
type Stance string

const (
	UnderHedged             Stance = "UNDER_HEDGED"
	Appropriate             Stance = "APPROPRIATE"
	ModeratelyOverHedged    Stance = "MODERATELY_OVER_HEDGED"
	SignificantlyOverHedged Stance = "SIGNIFICANTLY_OVER_HEDGED"
)

// Ratio thresholds, actual/optimal.
const (
	underHedgedBelow   = 0.8
	appropriateUpTo    = 1.2
	moderatelyOverUpTo = 2.0
)

// Label is the human-readable form used in reports.
func (s Stance) Label() string {
	switch s {
	case UnderHedged:
		return "Under-hedged"
	case Appropriate:
		return "Appropriately hedged"
	case ModeratelyOverHedged:
		return "Moderately over-hedged"
	case SignificantlyOverHedged:
		return "Significantly over-hedged (potential speculation)"
	}
	return string(s)
}

// ActualToOptimal returns actual/optimal, or 0 when optimal is not positive.
func ActualToOptimal(actualHedge, optimalHedge float64) float64 {
	if optimalHedge <= 0 {
		return 0
	}
	return actualHedge / optimalHedge
}

// ClassifyHedgingStance buckets actual/optimal at 0.8, 1.2 and 2.0.
// A ratio of exactly 0.8 is Appropriate; upper bounds are inclusive.
func ClassifyHedgingStance(actualHedge, optimalHedge float64) Stance {
	return stanceForRatio(ActualToOptimal(actualHedge, optimalHedge))
}

func stanceForRatio(ratio float64) Stance {
	switch {
	case ratio < underHedgedBelow:
		return UnderHedged
	case ratio <= appropriateUpTo:
		return Appropriate
	case ratio <= moderatelyOverUpTo:
		return ModeratelyOverHedged
	default:
		return SignificantlyOverHedged
	}
}

// Comparison is an actual hedge measured against the optimal amount.
type Comparison struct {
	ActualHedge  float64
	OptimalHedge float64
	Ratio        float64
	Stance       Stance
}

// Compare fails with ErrInvalidInput when actual/optimal overflows, as it
// does for a large actual hedge against a near-zero optimum.
func Compare(actualHedge, optimalHedge float64) (Comparison, error) {
	if err := model.RequireFinite("actual_hedge", actualHedge); err != nil {
		return Comparison{}, err
	}
	ratio := ActualToOptimal(actualHedge, optimalHedge)
	if err := model.RequireFiniteResult("actual_to_optimal", ratio); err != nil {
		return Comparison{}, err
	}
	return Comparison{
		ActualHedge:  actualHedge,
		OptimalHedge: optimalHedge,
		Ratio:        ratio,
		Stance:       stanceForRatio(ratio),
	}, nil
}
