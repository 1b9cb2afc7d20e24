package handlers

import (
	"derivatives-case-study/internal/analysis"
	"derivatives-case-study/internal/api/models"
	"derivatives-case-study/internal/data"
	"derivatives-case-study/internal/id"
	"derivatives-case-study/internal/logging"
	"derivatives-case-study/internal/model"
	"derivatives-case-study/internal/scenario"
	"derivatives-case-study/internal/simulate"

	"github.com/gin-gonic/gin"
)

const (
	sourceHistorical = "historical_2008"
	sourceCustom     = "custom"
)

// SimulationHandler runs monthly simulations. Results are returned inline
// and not retained.
type SimulationHandler struct {
	deps   *Deps
	engine *simulate.Engine
}

func NewSimulationHandler(deps *Deps) *SimulationHandler {
	return &SimulationHandler{deps: deps, engine: simulate.New()}
}

// RunSimulation handles POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cc, terms, err := h.deps.resolveContract(req.Contract)
	if err != nil {
		h.deps.fail(c, "simulation", err)
		return
	}
	path, source, err := h.buildPath(req, cc.InitialRate, terms.DurationMonths)
	if err != nil {
		h.deps.fail(c, "simulation", err)
		return
	}

	result, err := h.engine.Run(terms, cc.InitialRate, path)
	if err != nil {
		h.deps.fail(c, "simulation", err)
		return
	}
	h.deps.Metrics.SimulatedMonths.Add(float64(len(result.Ledger)))

	runID, createdAt := id.NewStamped()
	logging.FromContext(c.Request.Context()).Info("simulation completed",
		"id", runID, "source", source, "months", len(result.Ledger), "total_loss", result.TotalLoss)

	resp := models.SimulationResponse{
		ID:        runID,
		CreatedAt: createdAt,
		Status:    "completed",
		Source:    source,
		Contract:  toContractTerms(cc),
		Summary:   buildSummary(result),
		Path:      path,
	}
	if req.IncludeLedger {
		resp.Ledger = convertLedger(result.Ledger)
	}
	h.deps.ok(c, "simulation", resp)
}

// CompareScenarios handles POST /api/v1/simulations/compare
func (h *SimulationHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cc, terms, err := h.deps.resolveContract(req.Contract)
	if err != nil {
		h.deps.fail(c, "compare", err)
		return
	}
	patterns := make([]scenario.Pattern, 0, len(req.Patterns))
	for _, name := range req.Patterns {
		p, err := scenario.ParsePattern(name)
		if err != nil {
			h.deps.fail(c, "compare", model.InvalidInputf("%v", err))
			return
		}
		patterns = append(patterns, p)
	}
	startRate := req.StartRate
	if startRate == 0 {
		startRate = cc.InitialRate
	}

	outcomes, err := analysis.CompareScenarios(c.Request.Context(), analysis.CompareRequest{
		Terms:       terms,
		InitialRate: cc.InitialRate,
		StartRate:   startRate,
		EndRate:     req.EndRate,
		ShockMonth:  req.ShockMonth,
		Patterns:    patterns,
	})
	if err != nil {
		h.deps.fail(c, "compare", err)
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(outcomes))
	for i, o := range outcomes {
		h.deps.Metrics.SimulatedMonths.Add(float64(len(o.Result.Ledger)))
		info, _ := scenario.Describe(o.Pattern)
		comparison = append(comparison, models.ComparisonResult{
			Rank:    i + 1,
			Pattern: string(o.Pattern),
			Title:   info.Title,
			Summary: buildSummary(o.Result),
		})
	}
	runID, createdAt := id.NewStamped()
	h.deps.ok(c, "compare", models.CompareResponse{
		ID:         runID,
		CreatedAt:  createdAt,
		Contract:   toContractTerms(cc),
		Comparison: comparison,
	})
}

func (h *SimulationHandler) buildPath(req models.SimulationRequest, initialRate float64, months int) (model.ScenarioPath, string, error) {
	switch {
	case len(req.Path) > 0:
		return model.ScenarioPath(req.Path), sourceCustom, nil
	case req.Historical:
		return data.Historical2008(), sourceHistorical, nil
	case req.Scenario != nil:
		spec, err := scenarioSpec(*req.Scenario, initialRate, months)
		if err != nil {
			return nil, "", err
		}
		path, err := scenario.Generate(spec)
		if err != nil {
			return nil, "", err
		}
		return path, string(spec.Pattern), nil
	}
	return nil, "", model.InvalidInputf("one of path, historical or scenario is required")
}

func buildSummary(result *simulate.Result) models.SimulationSummary {
	return models.SimulationSummary{
		TotalLoss:      result.TotalLoss,
		TotalLossPct:   result.TotalLossPct,
		MaxMonthlyLoss: result.MaxMonthlyLoss,
		MaxLossMonth:   result.MaxLossMonth,
		Months:         len(result.Ledger),
	}
}

func convertLedger(ledger []simulate.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		out[i] = models.LedgerRow{
			Month:          row.Month,
			Rate:           row.Rate,
			Regime:         row.Regime,
			MonthlyLoss:    row.MonthlyLoss,
			CumulativeLoss: row.CumulativeLoss,
		}
	}
	return out
}
