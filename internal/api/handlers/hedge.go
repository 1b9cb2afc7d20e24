package handlers

import (
	"derivatives-case-study/internal/api/models"
	"derivatives-case-study/internal/config"
	"derivatives-case-study/internal/hedge"

	"github.com/gin-gonic/gin"
)

// HedgeHandler computes Bodnar-Marston optimal hedges.
type HedgeHandler struct {
	deps *Deps
}

func NewHedgeHandler(deps *Deps) *HedgeHandler {
	return &HedgeHandler{deps: deps}
}

// ComputeHedge handles POST /api/v1/hedge
func (h *HedgeHandler) ComputeHedge(c *gin.Context) {
	var req models.HedgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	hc := config.HedgeConfig{
		ForeignRevenueShare: req.ForeignRevenueShare,
		ForeignCostShare:    req.ForeignCostShare,
		ProfitMargin:        req.ProfitMargin,
		EBIT:                req.EBIT,
		ActualHedge:         req.ActualHedge,
	}
	if req.Preset != "" {
		preset, err := h.deps.loadPreset(req.Preset)
		if err != nil {
			h.deps.fail(c, "hedge", err)
			return
		}
		if preset.Hedge != nil {
			hc = config.MergeHedge(*preset.Hedge, hc)
		}
	}

	res, err := hedge.Compute(hc.ToInputs())
	if err != nil {
		h.deps.fail(c, "hedge", err)
		return
	}

	resp := models.HedgeResponse{
		HedgeRatio:         res.HedgeRatio,
		OptimalHedgeAmount: res.OptimalHedgeAmount,
		PercentOfEBIT:      res.PercentOfEBIT,
	}
	if hc.ActualHedge != 0 {
		cmp, err := hedge.Compare(hc.ActualHedge, res.OptimalHedgeAmount)
		if err != nil {
			h.deps.fail(c, "hedge", err)
			return
		}
		resp.Comparison = &models.HedgeComparison{
			ActualHedge: cmp.ActualHedge,
			Ratio:       cmp.Ratio,
			Stance:      string(cmp.Stance),
			Label:       cmp.Stance.Label(),
		}
	}
	h.deps.ok(c, "hedge", resp)
}

// Sensitivity handles GET /api/v1/hedge/sensitivity
func (h *HedgeHandler) Sensitivity(c *gin.Context) {
	var q models.SensitivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	lo, hi, points := q.Low, q.High, q.Points
	if lo == 0 {
		lo = hedge.DefaultMarginLow
	}
	if hi == 0 {
		hi = hedge.DefaultMarginHigh
	}
	if points == 0 {
		points = hedge.DefaultMarginPoints
	}

	grid, err := hedge.MarginSensitivity(q.ForeignRevenueShare, q.ForeignCostShare, lo, hi, points)
	if err != nil {
		h.deps.fail(c, "hedge_sensitivity", err)
		return
	}
	out := make([]models.SensitivityPoint, len(grid))
	for i, p := range grid {
		out[i] = models.SensitivityPoint{ProfitMargin: p.ProfitMargin, HedgeRatio: p.HedgeRatio}
	}
	h.deps.ok(c, "hedge_sensitivity", models.SensitivityResponse{
		ForeignRevenueShare: q.ForeignRevenueShare,
		ForeignCostShare:    q.ForeignCostShare,
		Points:              out,
	})
}
