package column

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every DomainError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidSelection is matched by every InvalidSelectionError via errors.Is.
var ErrInvalidSelection = errors.New("invalid selection")

// DomainError reports a parameter that is not positive and finite.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s must be positive and finite, got %v", e.Field, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrInvalidInput }

// InvalidSelectionError reports an out-of-range menu or cross-section choice.
type InvalidSelectionError struct {
	What  string
	Value string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid %s selection %q", e.What, e.Value)
}

func (e *InvalidSelectionError) Unwrap() error { return ErrInvalidSelection }

// OverflowError reports a derived quantity that is not finite even though
// every input is. Very large inputs cause it.
type OverflowError struct {
	Quantity string
	Value    float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s is out of range (%v) for these inputs", e.Quantity, e.Value)
}

func (e *OverflowError) Unwrap() error { return ErrInvalidInput }

func finite(quantity string, v float64) error {
	if !isFinite(v) {
		return &OverflowError{Quantity: quantity, Value: v}
	}
	return nil
}
