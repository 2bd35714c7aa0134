package value

// Type is the kind tag of a Value, without payload. The declaration order
// is load-bearing: the derived ordering in Compare ranks values of
// different kinds by this order.
type Type int

// Value kinds, in ordering rank order.
const (
	TypeNumber Type = iota
	TypeText
	TypeDateTime
	TypeMissing
	TypeBoolean
	TypeComposite
)

// typeNames maps each Type to its lower-camel-case wire identifier.
var typeNames = map[Type]string{
	TypeNumber:    "number",
	TypeText:      "text",
	TypeDateTime:  "dateTime",
	TypeMissing:   "missing",
	TypeBoolean:   "boolean",
	TypeComposite: "composite",
}

// String returns the wire identifier of the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "invalid"
}

// ParseType resolves a wire identifier back to a Type. The second result
// is false for unknown identifiers.
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// NumericKind discriminates the Number sub-variants. Declaration order is
// the ordering rank: every Integer sorts below every Real, which sorts
// below every Complex.
type NumericKind int

const (
	NumericInteger NumericKind = iota
	NumericReal
	NumericComplex
)

// Numeric is the payload of a Number value.
type Numeric struct {
	Kind NumericKind
	Int  int64   // NumericInteger
	Real float64 // NumericReal, and the real part of NumericComplex
	Imag float64 // imaginary part of NumericComplex
}

// Empty tags a missing value with whether its absence was anticipated.
type Empty int

const (
	// Unexpected marks data that should have been present. Its presence
	// in a dataset is a data-quality signal.
	Unexpected Empty = iota
	// Expected marks absence that the schema anticipates.
	Expected
)

// CollectionKind discriminates the Composite sub-variants.
type CollectionKind int

const (
	CollectionArray CollectionKind = iota
	CollectionObject
)

// Member is one named entry of an object collection. Member names are not
// required to be unique; order is preserved.
type Member struct {
	Name  string
	Value Value
}

// Collection is the payload of a Composite value: an ordered array of
// values or an ordered list of named members.
type Collection struct {
	Kind    CollectionKind
	Items   []Value  // CollectionArray
	Members []Member // CollectionObject
}

// Value is a single dynamically-typed datum, one of a closed set of kinds.
// The zero Value is Number(Integer(0)). Construct values through the
// factory functions in this package.
type Value struct {
	kind Type
	num  Numeric
	text string
	dt   DateTime
	miss Empty
	b    bool
	coll Collection
}

// Type returns the kind tag of the value. Total and pure.
func (v Value) Type() Type {
	return v.kind
}

// IsOfType reports whether the value has the given kind. Total and pure.
func (v Value) IsOfType(t Type) bool {
	return v.kind == t
}

// AsNumeric returns the numeric payload. The second result is false when
// the value is not a Number.
func (v Value) AsNumeric() (Numeric, bool) {
	if v.kind != TypeNumber {
		return Numeric{}, false
	}
	return v.num, true
}

// AsInt returns the integer payload. The second result is false when the
// value is not an integer Number.
func (v Value) AsInt() (int64, bool) {
	if v.kind != TypeNumber || v.num.Kind != NumericInteger {
		return 0, false
	}
	return v.num.Int, true
}

// AsReal returns the real payload. The second result is false when the
// value is not a real Number.
func (v Value) AsReal() (float64, bool) {
	if v.kind != TypeNumber || v.num.Kind != NumericReal {
		return 0, false
	}
	return v.num.Real, true
}

// AsComplex returns the real and imaginary parts. The third result is
// false when the value is not a complex Number.
func (v Value) AsComplex() (float64, float64, bool) {
	if v.kind != TypeNumber || v.num.Kind != NumericComplex {
		return 0, 0, false
	}
	return v.num.Real, v.num.Imag, true
}

// AsText returns the text payload. The second result is false when the
// value is not Text.
func (v Value) AsText() (string, bool) {
	if v.kind != TypeText {
		return "", false
	}
	return v.text, true
}

// AsDateTime returns the date/time payload. The second result is false
// when the value is not a DateTime.
func (v Value) AsDateTime() (DateTime, bool) {
	if v.kind != TypeDateTime {
		return DateTime{}, false
	}
	return v.dt, true
}

// AsBool returns the boolean payload. The second result is false when the
// value is not a Boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != TypeBoolean {
		return false, false
	}
	return v.b, true
}

// AsCollection returns the composite payload. The second result is false
// when the value is not a Composite.
func (v Value) AsCollection() (Collection, bool) {
	if v.kind != TypeComposite {
		return Collection{}, false
	}
	return v.coll, true
}

// Missingness returns the Empty tag of a Missing value. The second result
// is false when the value is not Missing.
func (v Value) Missingness() (Empty, bool) {
	if v.kind != TypeMissing {
		return 0, false
	}
	return v.miss, true
}
