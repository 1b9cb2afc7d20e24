package analysis

import (
	"context"
	"sort"

	"derivatives-case-study/internal/model"
	"derivatives-case-study/internal/scenario"
	"derivatives-case-study/internal/simulate"

	"golang.org/x/sync/errgroup"
)

// ScenarioOutcome is one pattern's simulated result against a contract.
type ScenarioOutcome struct {
	Pattern scenario.Pattern
	Path    model.ScenarioPath
	Result  *simulate.Result
}

// CompareRequest fixes the contract and the rate parameters shared by every
// pattern. A zero ShockMonth falls back to scenario.DefaultShockMonth.
type CompareRequest struct {
	Terms       model.ContractTerms
	InitialRate float64
	StartRate   float64
	EndRate     float64
	ShockMonth  int
	Patterns    []scenario.Pattern // empty means all patterns
}

// CompareScenarios simulates each pattern concurrently and returns the
// outcomes ranked by total loss, largest first. Ties keep pattern order.
func CompareScenarios(ctx context.Context, req CompareRequest) ([]ScenarioOutcome, error) {
	if err := req.Terms.Validate(); err != nil {
		return nil, err
	}
	patterns := req.Patterns
	if len(patterns) == 0 {
		patterns = scenario.Patterns
	}
	shock := req.ShockMonth
	if shock == 0 {
		shock = scenario.DefaultShockMonth(req.Terms.DurationMonths)
	}

	out := make([]ScenarioOutcome, len(patterns))
	engine := simulate.New()
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range patterns {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := scenario.Generate(scenario.Spec{
				Pattern:        p,
				StartRate:      req.StartRate,
				EndRate:        req.EndRate,
				DurationMonths: req.Terms.DurationMonths,
				ShockMonth:     shock,
			})
			if err != nil {
				return err
			}
			res, err := engine.Run(req.Terms, req.InitialRate, path)
			if err != nil {
				return err
			}
			out[i] = ScenarioOutcome{Pattern: p, Path: path, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	RankByTotalLoss(out)
	return out, nil
}

// RankByTotalLoss sorts outcomes by total loss, largest first.
func RankByTotalLoss(outcomes []ScenarioOutcome) {
	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Result.TotalLoss > outcomes[j].Result.TotalLoss
	})
}
