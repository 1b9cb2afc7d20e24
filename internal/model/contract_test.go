package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContractTerms(t *testing.T) {
	t.Parallel()

	terms, err := NewContractTerms(15_000_000, 1.65, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, terms.DurationMonths)

	_, err = NewContractTerms(15_000_000, 1.65, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewContractTerms(0, 1.65, 12)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewContractTerms(15_000_000, -1.65, 12)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContractTerms_MonthsRemaining(t *testing.T) {
	t.Parallel()

	terms := ContractTerms{Notional: 1, Strike: 1.65, DurationMonths: 12}

	got, err := terms.MonthsRemaining(0)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	got, err = terms.MonthsRemaining(12)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = terms.MonthsRemaining(13)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = terms.MonthsRemaining(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindInvalidInput, KindOf(InvalidInputf("x")))
	assert.Equal(t, KindPreconditionViolation, KindOf(PreconditionViolationf("y")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}
