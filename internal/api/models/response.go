package models

import (
	"time"

	"derivatives-case-study/internal/model"
)

type ContractTerms struct {
	Notional       float64 `json:"notional"`
	Strike         float64 `json:"strike"`
	DurationMonths int     `json:"duration_months"`
	InitialRate    float64 `json:"initial_rate"`
}

type LossResponse struct {
	Contract        ContractTerms `json:"contract"`
	CurrentRate     float64       `json:"current_rate"`
	MonthsRemaining int           `json:"months_remaining"`
	LossAmount      float64       `json:"loss_amount"`
	PercentageLoss  float64       `json:"percentage_loss"`
	Regime          model.Regime  `json:"regime"`
	LossMultiple    float64       `json:"loss_multiple"`
	RateChangePct   float64       `json:"rate_change_pct"`
	Direction       string        `json:"direction"`
}

type ScenarioResponse struct {
	Pattern string              `json:"pattern"`
	Title   string              `json:"title"`
	Path    []model.MarketPoint `json:"path"`
}

type LedgerRow struct {
	Month          int          `json:"month"`
	Rate           float64      `json:"rate"`
	Regime         model.Regime `json:"regime"`
	MonthlyLoss    float64      `json:"monthly_loss"`
	CumulativeLoss float64      `json:"cumulative_loss"`
}

type SimulationSummary struct {
	TotalLoss      float64 `json:"total_loss"`
	TotalLossPct   float64 `json:"total_loss_pct"`
	MaxMonthlyLoss float64 `json:"max_monthly_loss"`
	MaxLossMonth   int     `json:"max_loss_month"`
	Months         int     `json:"months"`
}

type SimulationResponse struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Status    string              `json:"status"`
	Source    string              `json:"source"` // pattern name, "historical_2008" or "custom"
	Contract  ContractTerms       `json:"contract"`
	Summary   SimulationSummary   `json:"summary"`
	Path      []model.MarketPoint `json:"path"`
	Ledger    []LedgerRow         `json:"ledger,omitempty"`
}

type ComparisonResult struct {
	Rank    int               `json:"rank"`
	Pattern string            `json:"pattern"`
	Title   string            `json:"title"`
	Summary SimulationSummary `json:"summary"`
}

type CompareResponse struct {
	ID         string             `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	Contract   ContractTerms      `json:"contract"`
	Comparison []ComparisonResult `json:"comparison"`
}

type ProfilePoint struct {
	Rate           float64      `json:"rate"`
	LossAmount     float64      `json:"loss_amount"`
	PercentageLoss float64      `json:"percentage_loss"`
	Regime         model.Regime `json:"regime"`
}

type ProfileResponse struct {
	Strike          float64        `json:"strike"`
	MonthsRemaining float64        `json:"months_remaining"`
	Low             float64        `json:"low"`
	High            float64        `json:"high"`
	BreakEven       *float64       `json:"break_even,omitempty"`
	Points          []ProfilePoint `json:"points"`
}

type HedgeComparison struct {
	ActualHedge float64 `json:"actual_hedge"`
	Ratio       float64 `json:"ratio"`
	Stance      string  `json:"stance"`
	Label       string  `json:"label"`
}

type HedgeResponse struct {
	HedgeRatio         float64          `json:"hedge_ratio"`
	OptimalHedgeAmount float64          `json:"optimal_hedge_amount"`
	PercentOfEBIT      float64          `json:"percent_of_ebit"`
	Comparison         *HedgeComparison `json:"comparison,omitempty"`
}

type SensitivityPoint struct {
	ProfitMargin float64 `json:"profit_margin"`
	HedgeRatio   float64 `json:"hedge_ratio"`
}

type SensitivityResponse struct {
	ForeignRevenueShare float64            `json:"foreign_revenue_share"`
	ForeignCostShare    float64            `json:"foreign_cost_share"`
	Points              []SensitivityPoint `json:"points"`
}

// PatternInfo describes a scenario pattern for clients building forms.
type PatternInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UsesRates   bool   `json:"uses_rates"`
	UsesShock   bool   `json:"uses_shock"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
