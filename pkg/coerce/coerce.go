// Package coerce converts values between types along a fixed
// compatibility matrix. Conversions are explicit and fallible: every
// unsupported type pair is a categorical CoercionImpossible, a supported
// pair can still fail on the particular value, and coercion from text
// delegates to the literal parser.
package coerce

import (
	"strconv"

	"github.com/mesh-intelligence/datakit/internal/iso8601"
	"github.com/mesh-intelligence/datakit/pkg/parse"
	"github.com/mesh-intelligence/datakit/pkg/value"
)

// Coercer converts values to requested types. The zero value is ready to
// use.
type Coercer struct {
	parser parse.Parser
}

// New returns a Coercer.
func New() Coercer {
	return Coercer{}
}

// Convert returns v coerced to the target type. Same-type conversion is
// the identity and always succeeds.
func (c Coercer) Convert(v value.Value, to value.Type) (value.Value, error) {
	from := v.Type()
	if from == to {
		return v, nil
	}

	switch {
	case from == value.TypeText && to == value.TypeNumber:
		return c.textTo(v, value.TypeNumber)
	case from == value.TypeText && to == value.TypeBoolean:
		return c.textTo(v, value.TypeBoolean)
	case from == value.TypeText && to == value.TypeDateTime:
		return c.textTo(v, value.TypeDateTime)
	case from == value.TypeNumber && to == value.TypeText:
		return numberToText(v)
	case from == value.TypeNumber && to == value.TypeBoolean:
		return numberToBoolean(v)
	case from == value.TypeBoolean && to == value.TypeText:
		return booleanToText(v)
	case from == value.TypeBoolean && to == value.TypeNumber:
		return booleanToNumber(v)
	case from == value.TypeDateTime && to == value.TypeText:
		return dateTimeToText(v)
	}
	return value.Value{}, impossible(from, to)
}

// textTo parses the text and keeps the result only when parsing yields
// the requested type.
func (c Coercer) textTo(v value.Value, target value.Type) (value.Value, error) {
	text, _ := v.AsText()
	parsed, err := c.parser.Parse(text)
	if err != nil || !parsed.IsOfType(target) {
		return value.Value{}, failed(target, text)
	}
	return parsed, nil
}

func numberToText(v value.Value) (value.Value, error) {
	num, _ := v.AsNumeric()
	switch num.Kind {
	case value.NumericInteger:
		return value.NewText(strconv.FormatInt(num.Int, 10)), nil
	case value.NumericReal:
		return value.NewText(strconv.FormatFloat(num.Real, 'g', -1, 64)), nil
	}
	return value.Value{}, domainError("conversion for complex numbers is currently not supported")
}

// numberToBoolean accepts only the integers 0 and 1. Any other integer,
// and any real or complex number, is outside the boolean domain.
func numberToBoolean(v value.Value) (value.Value, error) {
	i, ok := v.AsInt()
	if !ok {
		return value.Value{}, &CoercionError{Kind: ErrUnexpectedType}
	}
	switch i {
	case 0:
		return value.NewBool(false), nil
	case 1:
		return value.NewBool(true), nil
	}
	return value.Value{}, domainError("boolean values accepted only as 0 or 1 for integers, got " + strconv.FormatInt(i, 10))
}

func booleanToText(v value.Value) (value.Value, error) {
	b, _ := v.AsBool()
	return value.NewText(strconv.FormatBool(b)), nil
}

func booleanToNumber(v value.Value) (value.Value, error) {
	b, _ := v.AsBool()
	if b {
		return value.NewInt(1), nil
	}
	return value.NewInt(0), nil
}

func dateTimeToText(v value.Value) (value.Value, error) {
	dt, _ := v.AsDateTime()
	return value.NewText(iso8601.Format(dt)), nil
}
