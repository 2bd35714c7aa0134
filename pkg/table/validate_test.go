package table

import (
	"reflect"
	"testing"

	"github.com/mesh-intelligence/datakit/pkg/contract"
	"github.com/mesh-intelligence/datakit/pkg/value"
)

func TestValidateTableValid(t *testing.T) {
	tbl := peopleTable(t)
	if err := tbl.ValidateTable(); err != nil {
		t.Errorf("ValidateTable = %v, want nil", err)
	}
}

// One bad cell yields exactly one entry keyed by its column name, naming
// its exact row.
func TestValidateTableSingleBadCell(t *testing.T) {
	tbl := peopleTable(t)
	if err := tbl.AddRow([]value.Value{value.NewText("Eve"), value.NewInt(200)}); err != nil {
		t.Fatal(err)
	}

	err := tbl.ValidateTable()
	terr, ok := err.(*TableError)
	if !ok || terr.Kind != TableErrInvalidData {
		t.Fatalf("ValidateTable = %v, want invalid-data error", err)
	}
	if len(terr.Invalid) != 1 {
		t.Fatalf("invalid columns = %d, want 1", len(terr.Invalid))
	}
	rows, ok := terr.Invalid["age"]
	if !ok {
		t.Fatalf("invalid map keys = %v, want [age]", keys(terr.Invalid))
	}
	if len(rows) != 1 || rows[0].Row != 3 {
		t.Errorf("invalid rows = %+v, want one entry at row 3", rows)
	}
}

// The scan is exhaustive: every failing row in every failing column.
func TestValidateTableExhaustive(t *testing.T) {
	tbl := peopleTable(t)
	bad := [][]value.Value{
		{value.NewText(""), value.NewInt(-1)},
		{value.NewText("ok"), value.NewInt(151)},
	}
	for _, row := range bad {
		if err := tbl.AddRow(row); err != nil {
			t.Fatal(err)
		}
	}

	err := tbl.ValidateTable()
	terr, ok := err.(*TableError)
	if !ok || terr.Kind != TableErrInvalidData {
		t.Fatalf("ValidateTable = %v, want invalid-data error", err)
	}
	if got := len(terr.Invalid["name"]); got != 1 {
		t.Errorf("name failures = %d, want 1", got)
	}
	if got := len(terr.Invalid["age"]); got != 2 {
		t.Errorf("age failures = %d, want 2", got)
	}
	if rows := terr.Invalid["age"]; len(rows) == 2 && (rows[0].Row != 3 || rows[1].Row != 4) {
		t.Errorf("age failure rows = %d,%d, want 3,4", rows[0].Row, rows[1].Row)
	}
}

func TestValidateColumnAgainstContract(t *testing.T) {
	tbl := peopleTable(t)

	// A foreign contract the data cannot satisfy.
	strict := Col("age", contract.New(
		contract.IsType(value.TypeNumber),
		contract.Minimum(value.NewInt(18)),
	))
	err := tbl.ValidateColumnAgainstContract(ByName("age"), strict)
	terr, ok := err.(*TableError)
	if !ok || terr.Column == nil || terr.Column.Kind != ColumnErrInvalidValues {
		t.Fatalf("error = %v, want invalid-values column error", err)
	}
	// Only Mo (age 7, row 2) fails.
	if len(terr.Column.Errors) != 1 || terr.Column.Errors[0].Row != 2 {
		t.Errorf("errors = %+v, want one entry at row 2", terr.Column.Errors)
	}
}

func TestValidateAgainstSchemaStrictAndLenient(t *testing.T) {
	tbl := peopleTable(t)

	// Schema covering only the first column.
	partial := NewSchema(peopleSchema().ColumnContracts[0])

	if err := tbl.ValidateTableAgainstSchema(partial, false); err != nil {
		t.Errorf("lenient = %v, want nil", err)
	}

	err := tbl.ValidateTableAgainstSchema(partial, true)
	terr, ok := err.(*TableError)
	if !ok || terr.Column == nil || terr.Column.Kind != ColumnErrUnknown {
		t.Fatalf("strict = %v, want unknown-column error", err)
	}
	// The first uncovered ordinal is reported.
	if terr.Column.ID.Kind != ColumnByOrdinal || terr.Column.ID.Ordinal != 1 {
		t.Errorf("unknown id = %+v, want ordinal 1", terr.Column.ID)
	}
}

// Foreign contracts are paired by ordinal but failures are keyed by the
// table's own column names.
func TestValidateAgainstSchemaKeysAreTableNames(t *testing.T) {
	tbl := peopleTable(t)

	foreign := NewSchema(
		Col("renamed", contract.New(contract.IsType(value.TypeText))),
		Col("also renamed", contract.New(
			contract.IsType(value.TypeNumber),
			contract.Maximum(value.NewInt(10)),
		)),
	)
	err := tbl.ValidateTableAgainstSchema(foreign, true)
	terr, ok := err.(*TableError)
	if !ok || terr.Kind != TableErrInvalidData {
		t.Fatalf("error = %v, want invalid-data error", err)
	}
	if _, ok := terr.Invalid["age"]; !ok {
		t.Errorf("invalid map keys = %v, want the table's own name \"age\"", keys(terr.Invalid))
	}
}

func TestCheckCompatibility(t *testing.T) {
	tbl := peopleTable(t)

	if err := tbl.CheckCompatibility(peopleSchema()); err != nil {
		t.Errorf("identical schema = %v, want nil", err)
	}

	// Extra table columns are ignored; only the schema's columns count.
	if err := tbl.CheckCompatibility(NewSchema(peopleSchema().ColumnContracts[0])); err != nil {
		t.Errorf("subset schema = %v, want nil", err)
	}

	diff := NewSchema(
		Col("name", contract.New(contract.IsType(value.TypeText))), // different constraints
		Col("salary", contract.New(contract.IsType(value.TypeNumber))),
	)
	err := tbl.CheckCompatibility(diff)
	serr, ok := err.(*SchemaValidationError)
	if !ok {
		t.Fatalf("error = %T, want *SchemaValidationError", err)
	}
	if len(serr.SchemaErrors) != 2 {
		t.Fatalf("findings = %d, want 2", len(serr.SchemaErrors))
	}
	if serr.SchemaErrors[0].Kind != SchemaErrConflict {
		t.Errorf("finding 0 = %v, want conflict", serr.SchemaErrors[0].Kind)
	}
	if serr.SchemaErrors[1].Kind != SchemaErrMissingColumn || serr.SchemaErrors[1].Missing != "salary" {
		t.Errorf("finding 1 = %+v, want missing \"salary\"", serr.SchemaErrors[1])
	}
}

// Parallel validation must produce the same report as the sequential
// pass, down to row order.
func TestParallelMatchesSequential(t *testing.T) {
	tbl := FromSchema(peopleSchema())
	for i := 0; i < 500; i++ {
		name := value.NewText("p")
		age := value.NewInt(int64(i % 40))
		if i%7 == 0 {
			age = value.NewInt(1000) // out of bounds
		}
		if i%13 == 0 {
			name = value.NewText("") // too short
		}
		if err := tbl.AddRow([]value.Value{name, age}); err != nil {
			t.Fatal(err)
		}
	}

	seq := tbl.ValidateTable()
	par := tbl.ValidateTablePar()

	seqErr, ok := seq.(*TableError)
	if !ok {
		t.Fatalf("sequential = %v, want invalid-data error", seq)
	}
	parErr, ok := par.(*TableError)
	if !ok {
		t.Fatalf("parallel = %v, want invalid-data error", par)
	}
	if !reflect.DeepEqual(seqErr.Invalid, parErr.Invalid) {
		t.Error("parallel report differs from sequential report")
	}
}

func TestValidateColumnParValid(t *testing.T) {
	tbl := peopleTable(t)
	if err := tbl.ValidateColumnPar(ByName("age")); err != nil {
		t.Errorf("ValidateColumnPar = %v, want nil", err)
	}
	if err := tbl.ValidateColumnPar(ByName("salary")); err == nil {
		t.Error("ValidateColumnPar(unknown) = nil, want error")
	}
}

func keys(m map[string][]InvalidRow) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
