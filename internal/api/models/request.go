package models

import "derivatives-case-study/internal/model"

// ContractRequest identifies a contract either by preset, by explicit
// terms, or both (explicit non-zero fields override the preset).
type ContractRequest struct {
	Preset         string  `json:"preset,omitempty" form:"preset"`
	Notional       float64 `json:"notional,omitempty" form:"notional"`
	Strike         float64 `json:"strike,omitempty" form:"strike"`
	DurationMonths int     `json:"duration_months,omitempty" form:"duration_months"`
	InitialRate    float64 `json:"initial_rate,omitempty" form:"initial_rate"`
}

// LossRequest evaluates the whole remaining contract at one rate.
type LossRequest struct {
	Contract      ContractRequest `json:"contract"`
	CurrentRate   float64         `json:"current_rate" binding:"required"`
	MonthsElapsed int             `json:"months_elapsed"`
}

// ScenarioParams selects a market pattern. StartRate defaults to the
// contract's initial rate and ShockMonth to mid-contract.
type ScenarioParams struct {
	Pattern    string  `json:"pattern" binding:"required"`
	StartRate  float64 `json:"start_rate,omitempty"`
	EndRate    float64 `json:"end_rate,omitempty"`
	ShockMonth int     `json:"shock_month,omitempty"`
}

// ScenarioRequest generates a rate path without simulating it.
type ScenarioRequest struct {
	ScenarioParams
	DurationMonths int `json:"duration_months" binding:"required"`
}

// SimulationRequest runs the monthly simulator. The path source is, in
// order of precedence: Path, Historical, Scenario.
type SimulationRequest struct {
	Contract      ContractRequest     `json:"contract"`
	Scenario      *ScenarioParams     `json:"scenario,omitempty"`
	Path          []model.MarketPoint `json:"path,omitempty"`
	Historical    bool                `json:"historical,omitempty"`
	IncludeLedger bool                `json:"include_ledger,omitempty"`
}

// CompareRequest runs several patterns against one contract.
type CompareRequest struct {
	Contract   ContractRequest `json:"contract"`
	StartRate  float64         `json:"start_rate,omitempty"`
	EndRate    float64         `json:"end_rate" binding:"required"`
	ShockMonth int             `json:"shock_month,omitempty"`
	Patterns   []string        `json:"patterns,omitempty"` // empty: all
}

// ProfileQuery is bound from the query string of GET /profile.
type ProfileQuery struct {
	ContractRequest
	// CurrentRate centres the default grid; it defaults to the initial rate.
	CurrentRate     float64  `form:"current_rate"`
	MonthsRemaining *float64 `form:"months_remaining"`
	Low             float64  `form:"low"`
	High            float64  `form:"high"`
	Points          int      `form:"points"`
}

// HedgeRequest computes the optimal hedge. With a preset, the preset's
// hedge section is the base and non-zero fields override it.
type HedgeRequest struct {
	Preset              string  `json:"preset,omitempty"`
	ForeignRevenueShare float64 `json:"foreign_revenue_share"`
	ForeignCostShare    float64 `json:"foreign_cost_share"`
	ProfitMargin        float64 `json:"profit_margin"`
	EBIT                float64 `json:"ebit"`
	ActualHedge         float64 `json:"actual_hedge,omitempty"`
}

// SensitivityQuery is bound from the query string of GET /hedge/sensitivity.
type SensitivityQuery struct {
	ForeignRevenueShare float64 `form:"foreign_revenue_share"`
	ForeignCostShare    float64 `form:"foreign_cost_share"`
	Low                 float64 `form:"low"`
	High                float64 `form:"high"`
	Points              int     `form:"points"`
}
