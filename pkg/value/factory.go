package value

// Factory functions converting host primitives into Values. These are
// deliberately explicit named constructors so the one special case (empty
// text) stays visible at call sites.

// NewInt returns a Number value holding a 64-bit integer.
func NewInt(v int64) Value {
	return Value{kind: TypeNumber, num: Numeric{Kind: NumericInteger, Int: v}}
}

// NewReal returns a Number value holding a 64-bit float.
func NewReal(v float64) Value {
	return Value{kind: TypeNumber, num: Numeric{Kind: NumericReal, Real: v}}
}

// NewComplex returns a Number value holding a complex number as a pair of
// 64-bit floats.
func NewComplex(re, im float64) Value {
	return Value{kind: TypeNumber, num: Numeric{Kind: NumericComplex, Real: re, Imag: im}}
}

// NewText returns a Text value, empty or not.
func NewText(s string) Value {
	return Value{kind: TypeText, text: s}
}

// TextOrMissing is the data-intake factory for text cells. An empty
// string yields Missing(Unexpected) instead of Text(""): an empty cell in
// incoming data is a data-quality signal, not a valid text value.
func TextOrMissing(s string) Value {
	if len(s) == 0 {
		return NewMissing(Unexpected)
	}
	return NewText(s)
}

// NewBool returns a Boolean value.
func NewBool(b bool) Value {
	return Value{kind: TypeBoolean, b: b}
}

// NewMissing returns a Missing value with the given Empty tag.
func NewMissing(e Empty) Value {
	return Value{kind: TypeMissing, miss: e}
}

// NewDateTime returns a DateTime value.
func NewDateTime(dt DateTime) Value {
	return Value{kind: TypeDateTime, dt: dt}
}

// NewArray returns a Composite value holding an ordered array.
func NewArray(items ...Value) Value {
	return Value{kind: TypeComposite, coll: Collection{Kind: CollectionArray, Items: items}}
}

// NewObject returns a Composite value holding ordered named members.
// Member names are not required to be unique.
func NewObject(members ...Member) Value {
	return Value{kind: TypeComposite, coll: Collection{Kind: CollectionObject, Members: members}}
}

// NewComposite returns a Composite value from an existing collection.
func NewComposite(c Collection) Value {
	return Value{kind: TypeComposite, coll: c}
}
