// Package contract defines declarative validation rules for dynamic
// values. A ValueContract pairs one type constraint with any number of
// value constraints; validating a value runs every rule and collects all
// failures into a single ValidationError rather than stopping at the
// first. Contracts are immutable rule data: build them, never edit them.
package contract
