package handlers

import (
	"derivatives-case-study/internal/analysis"
	"derivatives-case-study/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves loss profiles over an exchange-rate grid.
type ProfileHandler struct {
	deps *Deps
}

func NewProfileHandler(deps *Deps) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// LossProfile handles GET /api/v1/profile
func (h *ProfileHandler) LossProfile(c *gin.Context) {
	var q models.ProfileQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	cc, terms, err := h.deps.resolveContract(q.ContractRequest)
	if err != nil {
		h.deps.fail(c, "profile", err)
		return
	}

	months := float64(terms.DurationMonths)
	if q.MonthsRemaining != nil {
		months = *q.MonthsRemaining
	}
	center := q.CurrentRate
	if center == 0 {
		center = cc.InitialRate
	}
	lo, hi := analysis.DefaultRange(center)
	if q.Low != 0 {
		lo = q.Low
	}
	if q.High != 0 {
		hi = q.High
	}
	points := q.Points
	if points == 0 {
		points = analysis.DefaultProfilePoints
	}

	p, err := analysis.LossProfile(terms, cc.InitialRate, months, lo, hi, points)
	if err != nil {
		h.deps.fail(c, "profile", err)
		return
	}
	h.deps.ok(c, "profile", toProfileResponse(p))
}

// RiskProfile handles GET /api/v1/profile/risk
func (h *ProfileHandler) RiskProfile(c *gin.Context) {
	p, err := analysis.RiskProfile()
	if err != nil {
		h.deps.fail(c, "risk_profile", err)
		return
	}
	h.deps.ok(c, "risk_profile", toProfileResponse(p))
}

func toProfileResponse(p *analysis.Profile) models.ProfileResponse {
	resp := models.ProfileResponse{
		Strike:          p.Strike,
		MonthsRemaining: p.MonthsRemaining,
		Low:             p.Low,
		High:            p.High,
		Points:          make([]models.ProfilePoint, len(p.Points)),
	}
	if be, ok := p.BreakEven(); ok {
		resp.BreakEven = &be
	}
	for i, pt := range p.Points {
		resp.Points[i] = models.ProfilePoint{
			Rate:           pt.Rate,
			LossAmount:     pt.LossAmount,
			PercentageLoss: pt.PercentageLoss,
			Regime:         pt.Regime,
		}
	}
	return resp
}
