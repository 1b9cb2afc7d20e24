package handlers

import (
	"derivatives-case-study/internal/api/models"
	"derivatives-case-study/internal/simulate"

	"github.com/gin-gonic/gin"
)

// LossHandler evaluates the whole remaining contract at a single rate.
type LossHandler struct {
	deps *Deps
}

func NewLossHandler(deps *Deps) *LossHandler {
	return &LossHandler{deps: deps}
}

// ComputeLoss handles POST /api/v1/loss
func (h *LossHandler) ComputeLoss(c *gin.Context) {
	var req models.LossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cc, terms, err := h.deps.resolveContract(req.Contract)
	if err != nil {
		h.deps.fail(c, "loss", err)
		return
	}
	wc, err := simulate.ExploreWholeContract(terms, cc.InitialRate, req.CurrentRate, req.MonthsElapsed)
	if err != nil {
		h.deps.fail(c, "loss", err)
		return
	}

	h.deps.ok(c, "loss", models.LossResponse{
		Contract:        toContractTerms(cc),
		CurrentRate:     req.CurrentRate,
		MonthsRemaining: wc.MonthsRemaining,
		LossAmount:      wc.LossAmount,
		PercentageLoss:  wc.PercentageLoss,
		Regime:          wc.Regime,
		LossMultiple:    wc.LossMultiple,
		RateChangePct:   wc.RateChangePct,
		Direction:       simulate.ChangeDirection(wc.RateChangePct),
	})
}
