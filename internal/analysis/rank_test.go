package analysis

import (
	"context"
	"testing"

	"derivatives-case-study/internal/model"
	"derivatives-case-study/internal/scenario"
	"derivatives-case-study/internal/simulate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareScenarios_AllPatternsRanked(t *testing.T) {
	t.Parallel()

	out, err := CompareScenarios(context.Background(), CompareRequest{
		Terms:       model.ContractTerms{Notional: 15_000_000, Strike: 1.65, DurationMonths: 12},
		InitialRate: 1.60,
		StartRate:   1.60,
		EndRate:     2.00,
	})
	require.NoError(t, err)
	require.Len(t, out, len(scenario.Patterns))

	seen := map[scenario.Pattern]bool{}
	for i, o := range out {
		seen[o.Pattern] = true
		require.NotNil(t, o.Result)
		assert.Len(t, o.Path, 12)
		if i > 0 {
			assert.GreaterOrEqual(t, out[i-1].Result.TotalLoss, o.Result.TotalLoss)
		}
	}
	assert.Len(t, seen, len(scenario.Patterns))

	// The pre-crisis path starts at 2.20 and stays above 1.65 for most of the year.
	assert.Equal(t, scenario.PreCrisisAppreciation, out[0].Pattern)
}

func TestCompareScenarios_MatchesDirectRun(t *testing.T) {
	t.Parallel()

	terms := model.ContractTerms{Notional: 15_000_000, Strike: 1.65, DurationMonths: 12}
	out, err := CompareScenarios(context.Background(), CompareRequest{
		Terms:       terms,
		InitialRate: 1.60,
		StartRate:   1.60,
		EndRate:     2.00,
		ShockMonth:  9,
		Patterns:    []scenario.Pattern{scenario.SuddenShock},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	path, err := scenario.Generate(scenario.Spec{Pattern: scenario.SuddenShock, StartRate: 1.60, EndRate: 2.00, DurationMonths: 12, ShockMonth: 9})
	require.NoError(t, err)
	direct, err := simulate.New().Run(terms, 1.60, path)
	require.NoError(t, err)
	assert.Equal(t, direct, out[0].Result)
}

func TestCompareScenarios_PropagatesErrors(t *testing.T) {
	t.Parallel()

	_, err := CompareScenarios(context.Background(), CompareRequest{
		Terms:       model.ContractTerms{Notional: 15_000_000, Strike: 1.65, DurationMonths: 12},
		InitialRate: 1.60,
		StartRate:   0,
		EndRate:     2.00,
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = CompareScenarios(context.Background(), CompareRequest{
		Terms: model.ContractTerms{Notional: 0, Strike: 1.65, DurationMonths: 12},
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestRankByTotalLoss_Stable(t *testing.T) {
	t.Parallel()

	outcomes := []ScenarioOutcome{
		{Pattern: scenario.GradualChange, Result: &simulate.Result{TotalLoss: 0}},
		{Pattern: scenario.SuddenShock, Result: &simulate.Result{TotalLoss: 10}},
		{Pattern: scenario.CrisisReversal, Result: &simulate.Result{TotalLoss: 0}},
	}
	RankByTotalLoss(outcomes)
	assert.Equal(t, scenario.SuddenShock, outcomes[0].Pattern)
	assert.Equal(t, scenario.GradualChange, outcomes[1].Pattern)
	assert.Equal(t, scenario.CrisisReversal, outcomes[2].Pattern)
}
