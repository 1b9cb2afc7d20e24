package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrorKind is the stable, machine-readable category of a failure.
// Keep these values stable; they are surfaced in API error bodies.
type ErrorKind string

const (
	KindInvalidInput          ErrorKind = "INVALID_INPUT"
	KindPreconditionViolation ErrorKind = "PRECONDITION_VIOLATION"
	KindInternal              ErrorKind = "INTERNAL"
)

var (
	// ErrInvalidInput covers non-positive or non-finite scalars, a zero
	// profit margin, bad durations and out-of-range shock months.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPreconditionViolation covers malformed scenario paths handed to the simulator.
	ErrPreconditionViolation = errors.New("precondition violation")
)

// InvalidInputf wraps ErrInvalidInput with a formatted message.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// PreconditionViolationf wraps ErrPreconditionViolation with a formatted message.
func PreconditionViolationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPreconditionViolation, fmt.Sprintf(format, args...))
}

// KindOf reports which category err belongs to.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrPreconditionViolation):
		return KindPreconditionViolation
	default:
		return KindInternal
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// RequirePositive fails with ErrInvalidInput unless x is finite and > 0.
func RequirePositive(name string, x float64) error {
	if !isFinite(x) || x <= 0 {
		return InvalidInputf("%s must be a finite value > 0, got %v", name, x)
	}
	return nil
}

// RequireNonNegative fails with ErrInvalidInput unless x is finite and >= 0.
func RequireNonNegative(name string, x float64) error {
	if !isFinite(x) || x < 0 {
		return InvalidInputf("%s must be a finite value >= 0, got %v", name, x)
	}
	return nil
}

// RequireFinite fails with ErrInvalidInput when x is NaN or infinite.
func RequireFinite(name string, x float64) error {
	if !isFinite(x) {
		return InvalidInputf("%s must be finite, got %v", name, x)
	}
	return nil
}

// RequireFiniteResult fails with ErrInvalidInput when a computed value
// overflowed float64 for otherwise finite inputs.
func RequireFiniteResult(name string, x float64) error {
	if !isFinite(x) {
		return InvalidInputf("%s overflows for these inputs", name)
	}
	return nil
}
