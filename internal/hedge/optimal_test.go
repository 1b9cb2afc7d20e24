package hedge

import (
	"math"
	"testing"

	"derivatives-case-study/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOptimalHedge_ReferenceExample(t *testing.T) {
	t.Parallel()

	// δ = 0.95 + 0.70 * (1/0.25 - 1) = 3.05
	got, err := ComputeOptimalHedge(0.95, 0.25, 0.25, 500_000_000)
	require.NoError(t, err)
	assert.InDelta(t, 3.05, got.HedgeRatio, 1e-12)
	assert.InDelta(t, 1_525_000_000.0, got.OptimalHedgeAmount, 1e-3)
	assert.InDelta(t, 305.0, got.PercentOfEBIT, 1e-9)
}

func TestComputeOptimalHedge_Unbounded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		h1, h2, r float64
		wantDelta float64
	}{
		{"matched exposure", 0.5, 0.5, 0.2, 0.5},
		{"costs exceed revenue", 0.2, 0.9, 0.1, 0.2 + (-0.7)*9},
		{"thin margin", 1.0, 0.0, 0.01, 1.0 + 99},
		{"negative margin", 0.6, 0.2, -0.5, 0.6 + 0.4*(-3)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ComputeOptimalHedge(tt.h1, tt.h2, tt.r, 100)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantDelta, got.HedgeRatio, 1e-9)
			assert.InDelta(t, tt.wantDelta*100, got.OptimalHedgeAmount, 1e-7)
		})
	}
}

func TestComputeOptimalHedge_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := ComputeOptimalHedge(0.95, 0.25, 0, 500)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = ComputeOptimalHedge(math.NaN(), 0.25, 0.25, 500)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = Compute(Inputs{ForeignRevenueShare: 0.95, ForeignCostShare: 0.25, ProfitMargin: 0.25, EBIT: math.Inf(1)})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestComputeOptimalHedge_Overflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		h1, h2, r, e float64
	}{
		{"subnormal margin", 0.95, 0.25, 1e-320, 5e8},
		{"huge ebit", 0.95, 0.25, 0.25, 1e308},
		{"ratio too large for percent", 1e307, -1e307, 0.5, 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ComputeOptimalHedge(tt.h1, tt.h2, tt.r, tt.e)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Contains(t, err.Error(), "overflows")
		})
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	got, err := Compute(Inputs{ForeignRevenueShare: 0.95, ForeignCostShare: 0.25, ProfitMargin: 0.25, EBIT: 500_000_000})
	require.NoError(t, err)
	assert.InDelta(t, 3.05, got.HedgeRatio, 1e-12)
}

func TestMarginSensitivity(t *testing.T) {
	t.Parallel()

	pts, err := MarginSensitivity(0.95, 0.25, DefaultMarginLow, DefaultMarginHigh, DefaultMarginPoints)
	require.NoError(t, err)
	require.Len(t, pts, 100)
	assert.Equal(t, DefaultMarginLow, pts[0].ProfitMargin)
	assert.Equal(t, DefaultMarginHigh, pts[99].ProfitMargin)

	// Lower margins call for larger hedges when h1 > h2.
	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i].HedgeRatio, pts[i-1].HedgeRatio)
	}

	_, err = MarginSensitivity(0.95, 0.25, -0.1, 0.5, 10)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = MarginSensitivity(0.95, 0.25, 0.5, 0.1, 10)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = MarginSensitivity(0.95, 0.25, 0.1, 0.5, 1)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
