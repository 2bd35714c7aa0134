package contract

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/datakit/pkg/value"
)

// ConstraintErrorKind discriminates the ways a single rule can fail.
type ConstraintErrorKind int

const (
	// ErrKindType means the value's kind did not match the expected kind.
	ErrKindType ConstraintErrorKind = iota
	// ErrKindInvalidValue means the value failed a value constraint.
	ErrKindInvalidValue
	// ErrKindInvalidConstraint means the constraint is inapplicable to the
	// value's kind, e.g. a length bound on a number.
	ErrKindInvalidConstraint
)

// ConstraintError is one rule's failure. It is data: constructed,
// serialized and returned, never used for control flow.
type ConstraintError struct {
	Kind       ConstraintErrorKind
	Expected   value.Type      // ErrKindType
	Received   value.Type      // ErrKindType
	Constraint ValueConstraint // ErrKindInvalidValue
}

func typeError(expected, received value.Type) ConstraintError {
	return ConstraintError{Kind: ErrKindType, Expected: expected, Received: received}
}

func invalidValueError(c ValueConstraint) ConstraintError {
	return ConstraintError{Kind: ErrKindInvalidValue, Constraint: c}
}

func invalidConstraintError() ConstraintError {
	return ConstraintError{Kind: ErrKindInvalidConstraint}
}

// Error implements the error interface.
func (e ConstraintError) Error() string {
	switch e.Kind {
	case ErrKindType:
		return fmt.Sprintf("expected type %s, received type %s", e.Expected, e.Received)
	case ErrKindInvalidValue:
		raw, err := json.Marshal(e.Constraint)
		if err != nil {
			return "failed value constraint"
		}
		return fmt.Sprintf("failed value constraint %s", raw)
	case ErrKindInvalidConstraint:
		return "invalid constraint"
	}
	return "unknown constraint error"
}

// ValidationError is one value's full set of constraint failures from one
// contract. FailedConstraints preserves rule order.
type ValidationError struct {
	OffendingValue    value.Value
	FailedConstraints []ConstraintError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	raw, err := json.Marshal(e.OffendingValue)
	if err != nil {
		return fmt.Sprintf("value is invalid: %d failed constraints", len(e.FailedConstraints))
	}
	return fmt.Sprintf("value %s is invalid: %d failed constraints", raw, len(e.FailedConstraints))
}
