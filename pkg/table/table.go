package table

import (
	"github.com/mesh-intelligence/datakit/pkg/value"
)

// Column is an ordered sequence of cell values.
type Column = []value.Value

// ColumnIDKind discriminates the two ways of addressing a column.
type ColumnIDKind int

const (
	ColumnByOrdinal ColumnIDKind = iota
	ColumnByName
)

// ColumnID addresses a column by position or by unique name.
type ColumnID struct {
	Kind    ColumnIDKind
	Ordinal int
	Name    string
}

// ByOrdinal addresses a column by position.
func ByOrdinal(i int) ColumnID {
	return ColumnID{Kind: ColumnByOrdinal, Ordinal: i}
}

// ByName addresses a column by name.
func ByName(name string) ColumnID {
	return ColumnID{Kind: ColumnByName, Name: name}
}

// Table is columnar storage: one column per contract, every column the
// same length. The invariants len(columns) == len(contracts) and equal
// column lengths hold after every mutation; a mutation that would break
// them is rejected whole.
type Table struct {
	columns   []Column
	contracts []ColumnContract
	colLength int // number of columns
	rowLength int // number of rows
}

// New returns an empty table with no columns.
func New() *Table {
	return &Table{}
}

// FromSchema returns an empty table shaped to the schema: one empty
// column per contract.
func FromSchema(schema Schema) *Table {
	t := New()
	t.contracts = make([]ColumnContract, len(schema.ColumnContracts))
	copy(t.contracts, schema.ColumnContracts)
	t.colLength = len(t.contracts)
	t.columns = make([]Column, t.colLength)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rowLength
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return t.colLength
}

// columnOrder returns the ordinal of the named column, or -1.
func (t *Table) columnOrder(name string) int {
	for i, cc := range t.contracts {
		if cc.Name == name {
			return i
		}
	}
	return -1
}

// resolve turns a ColumnID into an ordinal. An unknown name or an
// out-of-range ordinal yields ColumnError Unknown.
func (t *Table) resolve(id ColumnID) (int, error) {
	switch id.Kind {
	case ColumnByName:
		if ord := t.columnOrder(id.Name); ord >= 0 {
			return ord, nil
		}
	case ColumnByOrdinal:
		if id.Ordinal >= 0 && id.Ordinal < t.colLength {
			return id.Ordinal, nil
		}
	}
	return 0, &TableError{Kind: TableErrColumn, Column: unknownColumn(id)}
}

// AddRow appends one whole row. A row whose arity does not match the
// column count is rejected with DimensionError and nothing is mutated.
// Cell validity is not checked here; validation is a separate pass.
func (t *Table) AddRow(row []value.Value) error {
	if len(row) != t.colLength {
		return &TableError{Kind: TableErrDimension}
	}
	for i, v := range row {
		t.columns[i] = append(t.columns[i], v)
	}
	t.rowLength++
	return nil
}

// AddEmptyColumn appends a new empty column defined by the contract. The
// name must not already exist. Appending to a table with rows leaves the
// new column shorter only conceptually: it is padded with
// Missing(Unexpected) cells to keep every column the same length.
func (t *Table) AddEmptyColumn(cc ColumnContract) error {
	if ord := t.columnOrder(cc.Name); ord >= 0 {
		return &TableError{Kind: TableErrColumn, Column: &ColumnError{
			Kind:    ColumnErrAlreadyExists,
			Ordinal: ord,
			Name:    cc.Name,
		}}
	}
	col := make(Column, t.rowLength)
	for i := range col {
		col[i] = value.NewMissing(value.Unexpected)
	}
	t.contracts = append(t.contracts, cc)
	t.columns = append(t.columns, col)
	t.colLength++
	return nil
}

// RemoveColumn removes a column by id, shifting later ordinals down.
func (t *Table) RemoveColumn(id ColumnID) error {
	ord, err := t.resolve(id)
	if err != nil {
		return err
	}
	t.contracts = append(t.contracts[:ord], t.contracts[ord+1:]...)
	t.columns = append(t.columns[:ord], t.columns[ord+1:]...)
	t.colLength--
	if t.colLength == 0 {
		t.rowLength = 0
	}
	return nil
}

// AlterColumn replaces a column's contract without touching its data.
// This is schema evolution, independent of row validity; re-validate to
// see what the new contract thinks of the existing cells.
func (t *Table) AlterColumn(id ColumnID, cc ColumnContract) error {
	ord, err := t.resolve(id)
	if err != nil {
		return err
	}
	t.contracts[ord] = cc
	return nil
}

// Column returns the data of one column.
func (t *Table) Column(id ColumnID) (Column, error) {
	ord, err := t.resolve(id)
	if err != nil {
		return nil, err
	}
	return t.columns[ord], nil
}

// ColumnContract returns the contract of one column.
func (t *Table) ColumnContract(id ColumnID) (ColumnContract, error) {
	ord, err := t.resolve(id)
	if err != nil {
		return ColumnContract{}, err
	}
	return t.contracts[ord], nil
}

// Columns returns all column data in ordinal order.
func (t *Table) Columns() []Column {
	return t.columns
}

// ColumnContracts returns the full contract list in ordinal order.
func (t *Table) ColumnContracts() []ColumnContract {
	return t.contracts
}

// Schema returns the table's current shape as a Schema.
func (t *Table) Schema() Schema {
	contracts := make([]ColumnContract, len(t.contracts))
	copy(contracts, t.contracts)
	return Schema{ColumnContracts: contracts}
}
