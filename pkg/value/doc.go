// Package value models dynamic runtime values for user-supplied tabular
// data. A Value carries a runtime type tag, can be checked against a
// contract, coerced between types, and parsed from text without erroring
// out on malformed input.
//
// # Rich null handling
//
// Real-world data is messy: sometimes a value is missing even though
// nothing in the schema allows it to be. Instead of a single null, this
// package distinguishes Missing(Expected) from Missing(Unexpected). The
// latter is a data-quality signal, not a schema choice, and it gives
// cleaning routines something concrete to look for. Converting an empty
// string produces Missing(Unexpected) for the same reason: an empty text
// cell usually means the data went wrong, not that the text is "".
package value
