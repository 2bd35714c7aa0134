// Package table provides columnar storage for dynamic values with
// per-column contracts. A Schema (an ordered, named list of contracts)
// shapes an empty Table; rows are appended whole after a dimension check
// only, and validation later walks every column against its contract,
// collecting per-cell failures exhaustively instead of stopping at the
// first.
//
// Validation, compatibility checking and column reads are pure over a
// snapshot of the table. Mutation (AddRow, column add/remove/alter,
// MapColumn) is not safe to run concurrently with other mutations or with
// in-flight validation; callers serialize writes themselves.
package table
