package scenario

import (
	"testing"

	"derivatives-case-study/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndMonths(t *testing.T) {
	t.Parallel()

	for _, p := range Patterns {
		p := p
		t.Run(string(p), func(t *testing.T) {
			t.Parallel()
			path, err := Generate(Spec{Pattern: p, StartRate: 1.60, EndRate: 2.00, DurationMonths: 12, ShockMonth: 6})
			require.NoError(t, err)
			require.Len(t, path, 12)
			for i, pt := range path {
				assert.Equal(t, i+1, pt.Month)
				assert.Greater(t, pt.Rate, 0.0)
			}
			assert.NoError(t, path.Validate())
		})
	}
}

func TestGenerate_GradualChangeEndpoints(t *testing.T) {
	t.Parallel()

	path, err := Generate(Spec{Pattern: GradualChange, StartRate: 1.60, EndRate: 2.00, DurationMonths: 12})
	require.NoError(t, err)
	assert.Equal(t, 1.60, path[0].Rate)
	assert.InDelta(t, 2.00, path[len(path)-1].Rate, 1e-12)
	assert.InDelta(t, 1.60+0.40*5/11, path[5].Rate, 1e-12)
}

func TestGenerate_SuddenShockStep(t *testing.T) {
	t.Parallel()

	path, err := Generate(Spec{Pattern: SuddenShock, StartRate: 1.60, EndRate: 2.00, DurationMonths: 12, ShockMonth: 6})
	require.NoError(t, err)
	for _, pt := range path {
		if pt.Month < 6 {
			assert.Equal(t, 1.60, pt.Rate, "month %d", pt.Month)
		} else {
			assert.Equal(t, 2.00, pt.Rate, "month %d", pt.Month)
		}
	}
}

func TestGenerate_SuddenShockBounds(t *testing.T) {
	t.Parallel()

	for _, shock := range []int{0, -1, 13} {
		_, err := Generate(Spec{Pattern: SuddenShock, StartRate: 1.60, EndRate: 2.00, DurationMonths: 12, ShockMonth: shock})
		assert.ErrorIs(t, err, model.ErrInvalidInput, "shock=%d", shock)
	}

	path, err := Generate(Spec{Pattern: SuddenShock, StartRate: 1.60, EndRate: 2.00, DurationMonths: 12, ShockMonth: 1})
	require.NoError(t, err)
	assert.Equal(t, 2.00, path[0].Rate)
}

func TestGenerate_PreCrisisIgnoresRates(t *testing.T) {
	t.Parallel()

	a, err := Generate(Spec{Pattern: PreCrisisAppreciation, StartRate: 1.0, EndRate: 3.0, DurationMonths: 12})
	require.NoError(t, err)
	b, err := Generate(Spec{Pattern: PreCrisisAppreciation, DurationMonths: 12})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 2.2, a[0].Rate)
	assert.InDelta(t, 1.6, a[11].Rate, 1e-12)
}

func TestGenerate_CrisisReversal12(t *testing.T) {
	t.Parallel()

	path, err := Generate(Spec{Pattern: CrisisReversal, StartRate: 1.60, EndRate: 2.00, DurationMonths: 12})
	require.NoError(t, err)

	for i := 1; i <= 8; i++ {
		assert.InDelta(t, 1.60-0.02*float64(i-1), path[i-1].Rate, 1e-12, "month %d", i)
	}
	base := 1.60 - 0.02*7
	for i := 9; i <= 12; i++ {
		want := base + (2.00-base)*float64(i-8)/4
		assert.InDelta(t, want, path[i-1].Rate, 1e-12, "month %d", i)
	}
	assert.InDelta(t, 2.00, path[11].Rate, 1e-12)
}

func TestCrisisSplitMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, CrisisSplitMonth(12))
	assert.Equal(t, 4, CrisisSplitMonth(6))
	assert.Equal(t, 6, CrisisSplitMonth(9))
	assert.Equal(t, 0, CrisisSplitMonth(1))
	assert.Equal(t, 1, CrisisSplitMonth(2))
}

func TestGenerate_SingleMonth(t *testing.T) {
	t.Parallel()

	path, err := Generate(Spec{Pattern: GradualChange, StartRate: 1.60, EndRate: 2.00, DurationMonths: 1})
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, 1.60, path[0].Rate)

	path, err = Generate(Spec{Pattern: PreCrisisAppreciation, DurationMonths: 1})
	require.NoError(t, err)
	assert.Equal(t, 2.2, path[0].Rate)

	path, err = Generate(Spec{Pattern: CrisisReversal, StartRate: 1.60, EndRate: 2.00, DurationMonths: 1})
	require.NoError(t, err)
	assert.Equal(t, 2.00, path[0].Rate)
}

func TestGenerate_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
	}{
		{"zero duration", Spec{Pattern: GradualChange, StartRate: 1.6, EndRate: 2.0, DurationMonths: 0}},
		{"negative duration", Spec{Pattern: PreCrisisAppreciation, DurationMonths: -3}},
		{"zero start", Spec{Pattern: GradualChange, StartRate: 0, EndRate: 2.0, DurationMonths: 12}},
		{"negative end", Spec{Pattern: CrisisReversal, StartRate: 1.6, EndRate: -2.0, DurationMonths: 12}},
		{"unknown pattern", Spec{Pattern: "sideways", StartRate: 1.6, EndRate: 2.0, DurationMonths: 12}},
		{"drift below zero", Spec{Pattern: CrisisReversal, StartRate: 0.1, EndRate: 2.0, DurationMonths: 12}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Generate(tt.spec)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	spec := Spec{Pattern: CrisisReversal, StartRate: 1.75, EndRate: 2.35, DurationMonths: 9}
	a, err := Generate(spec)
	require.NoError(t, err)
	b, err := Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParsePattern(t *testing.T) {
	t.Parallel()

	tests := map[string]Pattern{
		"gradual_change":           GradualChange,
		"Gradual Change":           GradualChange,
		"sudden-shock":             SuddenShock,
		"Typical Pre-2008 Pattern": PreCrisisAppreciation,
		"2008 Crisis Pattern":      CrisisReversal,
		" crisis_reversal ":        CrisisReversal,
	}
	for in, want := range tests {
		got, err := ParsePattern(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePattern("sideways")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	for _, p := range Patterns {
		info, ok := Describe(p)
		require.True(t, ok, p)
		assert.Equal(t, p, info.Pattern)
		assert.NotEmpty(t, info.Title)
	}
	info, _ := Describe(SuddenShock)
	assert.True(t, info.UsesShock)
}

func TestDefaultShockMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, DefaultShockMonth(12))
	assert.Equal(t, 1, DefaultShockMonth(1))
	assert.Equal(t, 3, DefaultShockMonth(6))
}
