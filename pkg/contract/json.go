// Wire representation for contracts, constraints and their errors. Union
// variants serialize as a single lower-camel-case field; unit variants as
// bare strings. Validation reports cross process boundaries in this
// shape, so it must be preserved exactly.
package contract

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/datakit/pkg/value"
)

// MarshalJSON encodes the type constraint as {"isType": <type>}.
func (c TypeConstraint) MarshalJSON() ([]byte, error) {
	return value.MarshalTagged("isType", c.Expected)
}

// UnmarshalJSON decodes the type constraint.
func (c *TypeConstraint) UnmarshalJSON(data []byte) error {
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	if tag != "isType" {
		return fmt.Errorf("unknown type constraint variant %q", tag)
	}
	return json.Unmarshal(raw, &c.Expected)
}

// MarshalJSON encodes the constraint in its tagged form, e.g. "any",
// {"maximum": <value>} or {"maximumLength": 12}.
func (c ValueConstraint) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ConstraintAny:
		return json.Marshal("any")
	case ConstraintNot:
		return value.MarshalTagged("not", c.Inner)
	case ConstraintOneOf:
		allowed := c.Allowed
		if allowed == nil {
			allowed = []value.Value{}
		}
		return value.MarshalTagged("oneOf", allowed)
	case ConstraintMaximum:
		return value.MarshalTagged("maximum", c.Bound)
	case ConstraintMinimum:
		return value.MarshalTagged("minimum", c.Bound)
	case ConstraintMaximumLength:
		return value.MarshalTagged("maximumLength", c.Length)
	case ConstraintMinimumLength:
		return value.MarshalTagged("minimumLength", c.Length)
	}
	return nil, fmt.Errorf("invalid constraint kind %d", int(c.Kind))
}

// UnmarshalJSON decodes a constraint from its tagged form.
func (c *ValueConstraint) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "any" {
			return fmt.Errorf("unknown constraint variant %q", name)
		}
		*c = ValueConstraint{Kind: ConstraintAny}
		return nil
	}
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "not":
		var inner ValueConstraint
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		*c = ValueConstraint{Kind: ConstraintNot, Inner: &inner}
		return nil
	case "oneOf":
		var allowed []value.Value
		if err := json.Unmarshal(raw, &allowed); err != nil {
			return err
		}
		*c = ValueConstraint{Kind: ConstraintOneOf, Allowed: allowed}
		return nil
	case "maximum":
		var bound value.Value
		if err := json.Unmarshal(raw, &bound); err != nil {
			return err
		}
		*c = ValueConstraint{Kind: ConstraintMaximum, Bound: bound}
		return nil
	case "minimum":
		var bound value.Value
		if err := json.Unmarshal(raw, &bound); err != nil {
			return err
		}
		*c = ValueConstraint{Kind: ConstraintMinimum, Bound: bound}
		return nil
	case "maximumLength":
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		*c = ValueConstraint{Kind: ConstraintMaximumLength, Length: n}
		return nil
	case "minimumLength":
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		*c = ValueConstraint{Kind: ConstraintMinimumLength, Length: n}
		return nil
	}
	return fmt.Errorf("unknown constraint variant %q", tag)
}

type contractJSON struct {
	ExpectedType     TypeConstraint    `json:"expectedType"`
	ValueConstraints []ValueConstraint `json:"valueConstraints"`
}

// MarshalJSON encodes the contract with camelCase fields.
func (vc ValueContract) MarshalJSON() ([]byte, error) {
	constraints := vc.ValueConstraints
	if constraints == nil {
		constraints = []ValueConstraint{}
	}
	return json.Marshal(contractJSON{
		ExpectedType:     vc.ExpectedType,
		ValueConstraints: constraints,
	})
}

// UnmarshalJSON decodes the contract.
func (vc *ValueContract) UnmarshalJSON(data []byte) error {
	var cj contractJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	vc.ExpectedType = cj.ExpectedType
	vc.ValueConstraints = cj.ValueConstraints
	return nil
}

type typeErrorJSON struct {
	Expected value.Type `json:"expected"`
	Received value.Type `json:"received"`
}

// MarshalJSON encodes a constraint error as {"typeError": {...}},
// {"valueError": <constraint>} or "invalidConstraintError".
func (e ConstraintError) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case ErrKindType:
		return value.MarshalTagged("typeError", typeErrorJSON{Expected: e.Expected, Received: e.Received})
	case ErrKindInvalidValue:
		return value.MarshalTagged("valueError", e.Constraint)
	case ErrKindInvalidConstraint:
		return json.Marshal("invalidConstraintError")
	}
	return nil, fmt.Errorf("invalid constraint error kind %d", int(e.Kind))
}

// UnmarshalJSON decodes a constraint error.
func (e *ConstraintError) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "invalidConstraintError" {
			return fmt.Errorf("unknown constraint error variant %q", name)
		}
		*e = ConstraintError{Kind: ErrKindInvalidConstraint}
		return nil
	}
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "typeError":
		var te typeErrorJSON
		if err := json.Unmarshal(raw, &te); err != nil {
			return err
		}
		*e = ConstraintError{Kind: ErrKindType, Expected: te.Expected, Received: te.Received}
		return nil
	case "valueError":
		var c ValueConstraint
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		*e = ConstraintError{Kind: ErrKindInvalidValue, Constraint: c}
		return nil
	}
	return fmt.Errorf("unknown constraint error variant %q", tag)
}

type validationErrorJSON struct {
	OffendingValue    value.Value       `json:"offendingValue"`
	FailedConstraints []ConstraintError `json:"failedConstraints"`
}

// MarshalJSON encodes the validation error with camelCase fields.
func (e ValidationError) MarshalJSON() ([]byte, error) {
	failed := e.FailedConstraints
	if failed == nil {
		failed = []ConstraintError{}
	}
	return json.Marshal(validationErrorJSON{
		OffendingValue:    e.OffendingValue,
		FailedConstraints: failed,
	})
}

// UnmarshalJSON decodes the validation error.
func (e *ValidationError) UnmarshalJSON(data []byte) error {
	var vj validationErrorJSON
	if err := json.Unmarshal(data, &vj); err != nil {
		return err
	}
	e.OffendingValue = vj.OffendingValue
	e.FailedConstraints = vj.FailedConstraints
	return nil
}
