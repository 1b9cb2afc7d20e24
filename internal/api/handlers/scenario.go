package handlers

import (
	"net/http"

	"derivatives-case-study/internal/api/models"
	"derivatives-case-study/internal/model"
	"derivatives-case-study/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler generates market rate paths and lists the patterns.
type ScenarioHandler struct {
	deps *Deps
}

func NewScenarioHandler(deps *Deps) *ScenarioHandler {
	return &ScenarioHandler{deps: deps}
}

// Generate handles POST /api/v1/scenarios
func (h *ScenarioHandler) Generate(c *gin.Context) {
	var req models.ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	spec, err := scenarioSpec(req.ScenarioParams, 0, req.DurationMonths)
	if err != nil {
		h.deps.fail(c, "scenario", err)
		return
	}
	path, err := scenario.Generate(spec)
	if err != nil {
		h.deps.fail(c, "scenario", err)
		return
	}

	info, _ := scenario.Describe(spec.Pattern)
	h.deps.ok(c, "scenario", models.ScenarioResponse{
		Pattern: string(spec.Pattern),
		Title:   info.Title,
		Path:    path,
	})
}

// ListPatterns handles GET /api/v1/patterns
func (h *ScenarioHandler) ListPatterns(c *gin.Context) {
	out := make([]models.PatternInfo, 0, len(scenario.Patterns))
	for _, p := range scenario.Patterns {
		info, _ := scenario.Describe(p)
		out = append(out, models.PatternInfo{
			Name:        string(p),
			Title:       info.Title,
			Description: info.Description,
			UsesRates:   info.UsesRates,
			UsesShock:   info.UsesShock,
		})
	}
	c.JSON(http.StatusOK, gin.H{"patterns": out})
}

// scenarioSpec builds a generator spec. startRate is used when the request
// leaves it unset; a zero shock month means mid-contract.
func scenarioSpec(p models.ScenarioParams, startRate float64, months int) (scenario.Spec, error) {
	pattern, err := scenario.ParsePattern(p.Pattern)
	if err != nil {
		return scenario.Spec{}, model.InvalidInputf("%v", err)
	}
	if p.StartRate != 0 {
		startRate = p.StartRate
	}
	shock := p.ShockMonth
	if shock == 0 {
		shock = scenario.DefaultShockMonth(months)
	}
	return scenario.Spec{
		Pattern:        pattern,
		StartRate:      startRate,
		EndRate:        p.EndRate,
		DurationMonths: months,
		ShockMonth:     shock,
	}, nil
}
