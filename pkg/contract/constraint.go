package contract

import (
	"github.com/mesh-intelligence/datakit/pkg/value"
)

// Validator is the single-method capability shared by constraints and
// contracts: check one value, return nil or a full ValidationError.
type Validator interface {
	Validate(v value.Value) *ValidationError
}

// TypeConstraint requires a value to have an expected kind.
type TypeConstraint struct {
	Expected value.Type
}

// IsType returns a type constraint for the given kind.
func IsType(t value.Type) TypeConstraint {
	return TypeConstraint{Expected: t}
}

// Validate checks the value's kind against the expected kind.
func (c TypeConstraint) Validate(v value.Value) *ValidationError {
	received := v.Type()
	if received == c.Expected {
		return nil
	}
	return &ValidationError{
		OffendingValue: v,
		FailedConstraints: []ConstraintError{
			typeError(c.Expected, received),
		},
	}
}

// ConstraintKind discriminates the value constraint variants.
type ConstraintKind int

const (
	// ConstraintAny always passes.
	ConstraintAny ConstraintKind = iota
	// ConstraintNot passes iff its inner constraint fails.
	ConstraintNot
	// ConstraintOneOf passes iff the value equals one of the allowed values.
	ConstraintOneOf
	// ConstraintMaximum passes iff the value is <= the bound under the
	// derived value order.
	ConstraintMaximum
	// ConstraintMinimum passes iff the value is >= the bound.
	ConstraintMinimum
	// ConstraintMaximumLength bounds the length of a Text value.
	ConstraintMaximumLength
	// ConstraintMinimumLength bounds the length of a Text value.
	ConstraintMinimumLength
)

// ValueConstraint is one checkable rule over a value. Only the fields of
// the active Kind are meaningful. Build constraints with the factory
// functions; a constraint is never mutated after creation.
type ValueConstraint struct {
	Kind    ConstraintKind
	Inner   *ValueConstraint // ConstraintNot
	Allowed []value.Value    // ConstraintOneOf
	Bound   value.Value      // ConstraintMaximum, ConstraintMinimum
	Length  int              // ConstraintMaximumLength, ConstraintMinimumLength
}

// Any returns the constraint that always passes.
func Any() ValueConstraint {
	return ValueConstraint{Kind: ConstraintAny}
}

// Not returns the logical negation of a constraint. On failure it reports
// itself, not the inner cause.
func Not(inner ValueConstraint) ValueConstraint {
	return ValueConstraint{Kind: ConstraintNot, Inner: &inner}
}

// OneOf returns a membership constraint over the allowed values.
func OneOf(allowed ...value.Value) ValueConstraint {
	return ValueConstraint{Kind: ConstraintOneOf, Allowed: allowed}
}

// Maximum returns an upper-bound constraint under the derived value order.
// The order is permissive across kinds; see value.Compare.
func Maximum(bound value.Value) ValueConstraint {
	return ValueConstraint{Kind: ConstraintMaximum, Bound: bound}
}

// Minimum returns a lower-bound constraint under the derived value order.
func Minimum(bound value.Value) ValueConstraint {
	return ValueConstraint{Kind: ConstraintMinimum, Bound: bound}
}

// MaximumLength returns a constraint bounding the byte length of a Text
// value. It is inapplicable to any other kind.
func MaximumLength(n int) ValueConstraint {
	return ValueConstraint{Kind: ConstraintMaximumLength, Length: n}
}

// MinimumLength returns a constraint bounding the byte length of a Text
// value. It is inapplicable to any other kind.
func MinimumLength(n int) ValueConstraint {
	return ValueConstraint{Kind: ConstraintMinimumLength, Length: n}
}

// Validate checks one value against the constraint. Length constraints on
// a non-Text value report InvalidConstraintError: the constraint itself is
// inapplicable, which is distinct from the value failing it.
func (c ValueConstraint) Validate(v value.Value) *ValidationError {
	switch c.Kind {
	case ConstraintAny:
		return nil
	case ConstraintNot:
		if c.Inner.Validate(v) == nil {
			return c.fail(v)
		}
		return nil
	case ConstraintOneOf:
		for _, allowed := range c.Allowed {
			if value.Equal(v, allowed) {
				return nil
			}
		}
		return c.fail(v)
	case ConstraintMaximum:
		if cmp, ok := value.Compare(v, c.Bound); ok && cmp <= 0 {
			return nil
		}
		return c.fail(v)
	case ConstraintMinimum:
		if cmp, ok := value.Compare(v, c.Bound); ok && cmp >= 0 {
			return nil
		}
		return c.fail(v)
	case ConstraintMaximumLength:
		text, ok := v.AsText()
		if !ok {
			return c.inapplicable(v)
		}
		if len(text) <= c.Length {
			return nil
		}
		return c.fail(v)
	case ConstraintMinimumLength:
		text, ok := v.AsText()
		if !ok {
			return c.inapplicable(v)
		}
		if len(text) >= c.Length {
			return nil
		}
		return c.fail(v)
	}
	return c.inapplicable(v)
}

func (c ValueConstraint) fail(v value.Value) *ValidationError {
	return &ValidationError{
		OffendingValue:    v,
		FailedConstraints: []ConstraintError{invalidValueError(c)},
	}
}

func (c ValueConstraint) inapplicable(v value.Value) *ValidationError {
	return &ValidationError{
		OffendingValue:    v,
		FailedConstraints: []ConstraintError{invalidConstraintError()},
	}
}

// ValueContract pairs exactly one type constraint with zero or more value
// constraints.
type ValueContract struct {
	ExpectedType     TypeConstraint
	ValueConstraints []ValueConstraint
}

// New returns a contract from a type constraint and value constraints.
func New(expected TypeConstraint, constraints ...ValueConstraint) ValueContract {
	return ValueContract{ExpectedType: expected, ValueConstraints: constraints}
}

// Validate runs the type constraint and then every value constraint,
// without short-circuiting. A value that fails the type check still runs
// through the value constraints; all failures are reported together.
func (vc ValueContract) Validate(v value.Value) *ValidationError {
	var failed []ConstraintError
	if err := vc.ExpectedType.Validate(v); err != nil {
		failed = append(failed, err.FailedConstraints...)
	}
	for _, c := range vc.ValueConstraints {
		if err := c.Validate(v); err != nil {
			failed = append(failed, err.FailedConstraints...)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &ValidationError{OffendingValue: v, FailedConstraints: failed}
}

// Equal reports structural equality of two contracts.
func (vc ValueContract) Equal(other ValueContract) bool {
	if vc.ExpectedType != other.ExpectedType {
		return false
	}
	if len(vc.ValueConstraints) != len(other.ValueConstraints) {
		return false
	}
	for i := range vc.ValueConstraints {
		if !vc.ValueConstraints[i].Equal(other.ValueConstraints[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality of two constraints.
func (c ValueConstraint) Equal(other ValueConstraint) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case ConstraintAny:
		return true
	case ConstraintNot:
		return c.Inner.Equal(*other.Inner)
	case ConstraintOneOf:
		if len(c.Allowed) != len(other.Allowed) {
			return false
		}
		for i := range c.Allowed {
			if !value.Equal(c.Allowed[i], other.Allowed[i]) {
				return false
			}
		}
		return true
	case ConstraintMaximum, ConstraintMinimum:
		return value.Equal(c.Bound, other.Bound)
	case ConstraintMaximumLength, ConstraintMinimumLength:
		return c.Length == other.Length
	}
	return false
}
