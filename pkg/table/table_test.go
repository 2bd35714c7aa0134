package table

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/datakit/pkg/contract"
	"github.com/mesh-intelligence/datakit/pkg/value"
)

func peopleSchema() Schema {
	return NewSchema(
		Col("name", contract.New(contract.IsType(value.TypeText), contract.MinimumLength(1))),
		Col("age", contract.New(
			contract.IsType(value.TypeNumber),
			contract.Minimum(value.NewInt(0)),
			contract.Maximum(value.NewInt(150)),
		)),
	)
}

func peopleTable(t *testing.T) *Table {
	t.Helper()
	tbl := FromSchema(peopleSchema())
	rows := [][]value.Value{
		{value.NewText("Jim"), value.NewInt(42)},
		{value.NewText("Ada"), value.NewInt(36)},
		{value.NewText("Mo"), value.NewInt(7)},
	}
	for _, row := range rows {
		if err := tbl.AddRow(row); err != nil {
			t.Fatalf("AddRow error = %v", err)
		}
	}
	return tbl
}

func TestFromSchema(t *testing.T) {
	tbl := FromSchema(peopleSchema())

	if got := tbl.NumColumns(); got != 2 {
		t.Errorf("NumColumns = %d, want 2", got)
	}
	if got := tbl.Len(); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
	if !tbl.Schema().ColumnContracts[0].Equal(peopleSchema().ColumnContracts[0]) {
		t.Error("Schema() does not round-trip the input schema")
	}
}

func TestAddRowDimensionMismatch(t *testing.T) {
	tbl := peopleTable(t)

	err := tbl.AddRow([]value.Value{value.NewText("solo")})
	terr := &TableError{}
	if !errors.As(err, &terr) || terr.Kind != TableErrDimension {
		t.Fatalf("AddRow error = %v, want dimension error", err)
	}

	// The rejected row must not leave a partial write behind.
	if got := tbl.Len(); got != 3 {
		t.Errorf("Len after rejected row = %d, want 3", got)
	}
	for i, col := range tbl.Columns() {
		if len(col) != 3 {
			t.Errorf("column %d length = %d, want 3", i, len(col))
		}
	}
}

func TestColumnAccess(t *testing.T) {
	tbl := peopleTable(t)

	byName, err := tbl.Column(ByName("age"))
	if err != nil {
		t.Fatalf("Column(name) error = %v", err)
	}
	byOrd, err := tbl.Column(ByOrdinal(1))
	if err != nil {
		t.Fatalf("Column(ordinal) error = %v", err)
	}
	if len(byName) != 3 || !value.Equal(byName[0], byOrd[0]) {
		t.Error("name and ordinal addressing disagree")
	}

	if _, err := tbl.Column(ByName("salary")); err == nil {
		t.Error("Column(unknown name) error = nil, want error")
	}
	if _, err := tbl.Column(ByOrdinal(99)); err == nil {
		t.Error("Column(out of range) error = nil, want error")
	}
	if _, err := tbl.Column(ByOrdinal(-1)); err == nil {
		t.Error("Column(negative ordinal) error = nil, want error")
	}
}

func TestAddEmptyColumn(t *testing.T) {
	tbl := peopleTable(t)

	cc := Col("nickname", contract.New(contract.IsType(value.TypeText)))
	if err := tbl.AddEmptyColumn(cc); err != nil {
		t.Fatalf("AddEmptyColumn error = %v", err)
	}
	if got := tbl.NumColumns(); got != 3 {
		t.Errorf("NumColumns = %d, want 3", got)
	}

	// The new column is padded so all columns stay the same length.
	col, err := tbl.Column(ByName("nickname"))
	if err != nil {
		t.Fatal(err)
	}
	if len(col) != tbl.Len() {
		t.Fatalf("new column length = %d, want %d", len(col), tbl.Len())
	}
	for _, v := range col {
		if miss, ok := v.Missingness(); !ok || miss != value.Unexpected {
			t.Errorf("pad cell = %v, want Missing(Unexpected)", v.Type())
		}
	}
}

func TestAddEmptyColumnDuplicateName(t *testing.T) {
	tbl := peopleTable(t)

	err := tbl.AddEmptyColumn(Col("age", contract.New(contract.IsType(value.TypeNumber))))
	terr := &TableError{}
	if !errors.As(err, &terr) || terr.Column == nil || terr.Column.Kind != ColumnErrAlreadyExists {
		t.Fatalf("AddEmptyColumn error = %v, want already-exists error", err)
	}
	if terr.Column.Ordinal != 1 || terr.Column.Name != "age" {
		t.Errorf("collision = (%d, %q), want (1, \"age\")", terr.Column.Ordinal, terr.Column.Name)
	}
}

func TestRemoveColumn(t *testing.T) {
	tbl := peopleTable(t)

	if err := tbl.RemoveColumn(ByName("name")); err != nil {
		t.Fatalf("RemoveColumn error = %v", err)
	}
	if got := tbl.NumColumns(); got != 1 {
		t.Errorf("NumColumns = %d, want 1", got)
	}
	// Later ordinals shift down.
	cc, err := tbl.ColumnContract(ByOrdinal(0))
	if err != nil {
		t.Fatal(err)
	}
	if cc.Name != "age" {
		t.Errorf("remaining column = %q, want \"age\"", cc.Name)
	}

	// Removing the last column empties the table entirely.
	if err := tbl.RemoveColumn(ByOrdinal(0)); err != nil {
		t.Fatal(err)
	}
	if tbl.NumColumns() != 0 || tbl.Len() != 0 {
		t.Errorf("empty table shape = (%d, %d), want (0, 0)", tbl.NumColumns(), tbl.Len())
	}
}

func TestAlterColumn(t *testing.T) {
	tbl := peopleTable(t)

	relaxed := Col("age", contract.New(contract.IsType(value.TypeNumber)))
	if err := tbl.AlterColumn(ByName("age"), relaxed); err != nil {
		t.Fatalf("AlterColumn error = %v", err)
	}
	cc, err := tbl.ColumnContract(ByName("age"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cc.ValueContract.ValueConstraints) != 0 {
		t.Error("AlterColumn did not replace the contract")
	}
	// Data is untouched.
	col, err := tbl.Column(ByName("age"))
	if err != nil {
		t.Fatal(err)
	}
	if len(col) != 3 {
		t.Errorf("column length after alter = %d, want 3", len(col))
	}
}
