package coerce

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/datakit/pkg/value"
)

// ErrorKind discriminates the coercion error union.
type ErrorKind int

const (
	// ErrImpossible marks a type pair the matrix never supports.
	ErrImpossible ErrorKind = iota
	// ErrFailed marks a supported pair that failed on this value.
	ErrFailed
	// ErrDomain marks a value outside the target type's domain.
	ErrDomain
	// ErrUnexpectedType marks an internal routing mismatch.
	ErrUnexpectedType
)

// CoercionError reports why a conversion did not produce a value.
type CoercionError struct {
	Kind ErrorKind

	// From and To are set for ErrImpossible.
	From value.Type
	To   value.Type

	// TargetType and SourceText are set for ErrFailed.
	TargetType value.Type
	SourceText string

	// Message is set for ErrDomain.
	Message string
}

func impossible(from, to value.Type) *CoercionError {
	return &CoercionError{Kind: ErrImpossible, From: from, To: to}
}

func failed(target value.Type, text string) *CoercionError {
	return &CoercionError{Kind: ErrFailed, TargetType: target, SourceText: text}
}

func domainError(msg string) *CoercionError {
	return &CoercionError{Kind: ErrDomain, Message: msg}
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	switch e.Kind {
	case ErrImpossible:
		return fmt.Sprintf("coercion from %s to %s is impossible", e.From, e.To)
	case ErrFailed:
		return fmt.Sprintf("cannot coerce %q to %s", e.SourceText, e.TargetType)
	case ErrDomain:
		return e.Message
	case ErrUnexpectedType:
		return "unexpected value type"
	}
	return fmt.Sprintf("invalid coercion error kind %d", int(e.Kind))
}

type impossibleJSON struct {
	From value.Type `json:"from"`
	To   value.Type `json:"to"`
}

type failedJSON struct {
	TargetType value.Type `json:"targetType"`
	SourceText string     `json:"sourceText"`
}

// MarshalJSON encodes the error in its tagged form: payload variants as
// a single lower-camel-case field, unit variants as bare strings.
func (e *CoercionError) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case ErrImpossible:
		return value.MarshalTagged("coercionImpossible", impossibleJSON{From: e.From, To: e.To})
	case ErrFailed:
		return value.MarshalTagged("coercionFailed", failedJSON{TargetType: e.TargetType, SourceText: e.SourceText})
	case ErrDomain:
		return value.MarshalTagged("domainError", e.Message)
	case ErrUnexpectedType:
		return json.Marshal("unexpectedType")
	}
	return nil, fmt.Errorf("invalid coercion error kind %d", int(e.Kind))
}

// UnmarshalJSON decodes the error.
func (e *CoercionError) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "unexpectedType" {
			return fmt.Errorf("unknown coercion error variant %q", name)
		}
		*e = CoercionError{Kind: ErrUnexpectedType}
		return nil
	}
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "coercionImpossible":
		var ij impossibleJSON
		if err := json.Unmarshal(raw, &ij); err != nil {
			return err
		}
		*e = CoercionError{Kind: ErrImpossible, From: ij.From, To: ij.To}
		return nil
	case "coercionFailed":
		var fj failedJSON
		if err := json.Unmarshal(raw, &fj); err != nil {
			return err
		}
		*e = CoercionError{Kind: ErrFailed, TargetType: fj.TargetType, SourceText: fj.SourceText}
		return nil
	case "domainError":
		*e = CoercionError{Kind: ErrDomain}
		return json.Unmarshal(raw, &e.Message)
	}
	return fmt.Errorf("unknown coercion error variant %q", tag)
}
