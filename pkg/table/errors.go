package table

import (
	"fmt"

	"github.com/mesh-intelligence/datakit/pkg/contract"
)

// InvalidRow pairs a row index with the validation failure of the cell at
// that row.
type InvalidRow struct {
	Row int
	Err *contract.ValidationError
}

// ColumnErrorKind discriminates the column-level failures.
type ColumnErrorKind int

const (
	// ColumnErrUnknown means a column id did not resolve.
	ColumnErrUnknown ColumnErrorKind = iota
	// ColumnErrAlreadyExists means a column add collided on name.
	ColumnErrAlreadyExists
	// ColumnErrInvalidValues means one or more cells failed the contract.
	ColumnErrInvalidValues
)

// ColumnError is a column resolution or validation failure. The invalid
// values variant is exhaustive: Errors lists every failing row, not just
// the first.
type ColumnError struct {
	Kind     ColumnErrorKind
	ID       ColumnID       // ColumnErrUnknown
	Ordinal  int            // ColumnErrAlreadyExists
	Name     string         // ColumnErrAlreadyExists
	Contract ColumnContract // ColumnErrInvalidValues
	Errors   []InvalidRow   // ColumnErrInvalidValues
}

func unknownColumn(id ColumnID) *ColumnError {
	return &ColumnError{Kind: ColumnErrUnknown, ID: id}
}

// Error implements the error interface.
func (e *ColumnError) Error() string {
	switch e.Kind {
	case ColumnErrUnknown:
		if e.ID.Kind == ColumnByName {
			return fmt.Sprintf("unknown column %q", e.ID.Name)
		}
		return fmt.Sprintf("unknown column ordinal %d", e.ID.Ordinal)
	case ColumnErrAlreadyExists:
		return fmt.Sprintf("column %q already exists at ordinal %d", e.Name, e.Ordinal)
	case ColumnErrInvalidValues:
		return fmt.Sprintf("column %q contains %d invalid values", e.Contract.Name, len(e.Errors))
	}
	return "unknown column error"
}

// TableErrorKind discriminates the table-level failures.
type TableErrorKind int

const (
	// TableErrDimension means a row's arity did not match the column
	// count; nothing was mutated.
	TableErrDimension TableErrorKind = iota
	// TableErrColumn wraps a single-column failure.
	TableErrColumn
	// TableErrInvalidData is the table-wide aggregation: column name to
	// the exhaustive list of failing rows in that column.
	TableErrInvalidData
)

// TableError is the top of the table error hierarchy.
type TableError struct {
	Kind    TableErrorKind
	Column  *ColumnError            // TableErrColumn
	Invalid map[string][]InvalidRow // TableErrInvalidData
}

// Error implements the error interface.
func (e *TableError) Error() string {
	switch e.Kind {
	case TableErrDimension:
		return "row dimension does not match column count"
	case TableErrColumn:
		return e.Column.Error()
	case TableErrInvalidData:
		return fmt.Sprintf("table contains invalid data in %d columns", len(e.Invalid))
	}
	return "unknown table error"
}

// Unwrap exposes the wrapped column error to errors.As.
func (e *TableError) Unwrap() error {
	if e.Kind == TableErrColumn && e.Column != nil {
		return e.Column
	}
	return nil
}

// SchemaErrorKind discriminates schema compatibility failures.
type SchemaErrorKind int

const (
	// SchemaErrConflict means a shared column name carries a structurally
	// different contract.
	SchemaErrConflict SchemaErrorKind = iota
	// SchemaErrMissingColumn means the table lacks a column the schema
	// names.
	SchemaErrMissingColumn
)

// SchemaError is one finding of a structural schema diff.
type SchemaError struct {
	Kind     SchemaErrorKind
	Expected ColumnContract // SchemaErrConflict: the supplied schema's side
	Received ColumnContract // SchemaErrConflict: the table's side
	Missing  string         // SchemaErrMissingColumn
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	switch e.Kind {
	case SchemaErrConflict:
		return fmt.Sprintf("column %q has conflicting constraints", e.Expected.Name)
	case SchemaErrMissingColumn:
		return fmt.Sprintf("missing column %q", e.Missing)
	}
	return "unknown schema error"
}

// SchemaValidationError aggregates every finding of a compatibility check.
type SchemaValidationError struct {
	SchemaErrors []SchemaError
}

// Error implements the error interface.
func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("schema is incompatible: %d conflicts", len(e.SchemaErrors))
}
