package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Contract violations
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidLanguage  = fmt.Errorf("%w: unsupported language", ErrInvalidArgument)
	ErrInvalidCost      = fmt.Errorf("%w: cost parameter must be finite and >= 0", ErrInvalidArgument)
	ErrEmptyReferences  = fmt.Errorf("%w: at least one reference is required", ErrInvalidArgument)
	ErrCorpusMismatch   = fmt.Errorf("%w: hypotheses and references differ in length", ErrInvalidArgument)
	ErrTrackingMismatch = fmt.Errorf("%w: accumulators disagree on per-sentence tracking", ErrInvalidArgument)

	// State errors
	ErrDivisionUndefined = errors.New("corpus score undefined for zero sentences")
	ErrFeatureNotEnabled = errors.New("per-sentence tracking not enabled")

	// Not found errors
	ErrNotFound    = errors.New("resource not found")
	ErrRunNotFound = fmt.Errorf("%w: evaluation run", ErrNotFound)
)

// Error constructors with context
func NewInvalidArgumentError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, field, reason)
}

func NewRunNotFoundError(id string) error {
	return fmt.Errorf("%w with id %s", ErrRunNotFound, id)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
