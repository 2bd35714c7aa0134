package table

import (
	"testing"

	"github.com/mesh-intelligence/datakit/pkg/value"
)

func doubleAge(v value.Value) value.Value {
	if i, ok := v.AsInt(); ok {
		return value.NewInt(i * 2)
	}
	return v
}

func TestMapColumn(t *testing.T) {
	tbl := peopleTable(t)

	if err := tbl.MapColumn(ByName("age"), doubleAge); err != nil {
		t.Fatalf("MapColumn error = %v", err)
	}
	col, err := tbl.Column(ByName("age"))
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{84, 72, 14}
	for i, w := range want {
		if got, _ := col[i].AsInt(); got != w {
			t.Errorf("row %d = %d, want %d", i, got, w)
		}
	}

	// The other column is untouched.
	names, err := tbl.Column(ByName("name"))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := names[0].AsText(); s != "Jim" {
		t.Errorf("name column changed: %q", s)
	}

	if err := tbl.MapColumn(ByName("salary"), doubleAge); err == nil {
		t.Error("MapColumn(unknown) = nil, want error")
	}
}

// The transform only touches rows where every predicate passes against
// its own column's cell in that row.
func TestMapColumnIf(t *testing.T) {
	tbl := peopleTable(t)

	adults := []ColumnPredicate{{
		Column: ByName("age"),
		Pred: func(v value.Value) bool {
			i, ok := v.AsInt()
			return ok && i >= 18
		},
	}}
	upcase := func(v value.Value) value.Value {
		return value.NewText("ADULT")
	}

	if err := tbl.MapColumnIf(ByName("name"), upcase, adults); err != nil {
		t.Fatalf("MapColumnIf error = %v", err)
	}

	col, err := tbl.Column(ByName("name"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ADULT", "ADULT", "Mo"}
	for i, w := range want {
		if got, _ := col[i].AsText(); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}
}

// Several predicates conjoin: a row transforms only when all pass.
func TestMapColumnIfConjunction(t *testing.T) {
	tbl := peopleTable(t)

	preds := []ColumnPredicate{
		{Column: ByName("age"), Pred: func(v value.Value) bool {
			i, ok := v.AsInt()
			return ok && i >= 18
		}},
		{Column: ByName("name"), Pred: func(v value.Value) bool {
			s, ok := v.AsText()
			return ok && len(s) == 3
		}},
	}
	if err := tbl.MapColumnIf(ByName("age"), doubleAge, preds); err != nil {
		t.Fatal(err)
	}

	col, err := tbl.Column(ByName("age"))
	if err != nil {
		t.Fatal(err)
	}
	// Jim (42, 3 letters) and Ada (36, 3 letters) pass; Mo is a minor.
	want := []int64{84, 72, 7}
	for i, w := range want {
		if got, _ := col[i].AsInt(); got != w {
			t.Errorf("row %d = %d, want %d", i, got, w)
		}
	}
}

// An unknown predicate column rejects the whole operation before any
// cell changes.
func TestMapColumnIfUnknownPredicateColumn(t *testing.T) {
	tbl := peopleTable(t)

	preds := []ColumnPredicate{{
		Column: ByName("salary"),
		Pred:   func(value.Value) bool { return true },
	}}
	if err := tbl.MapColumnIf(ByName("age"), doubleAge, preds); err == nil {
		t.Fatal("MapColumnIf = nil, want error")
	}

	col, err := tbl.Column(ByName("age"))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := col[0].AsInt(); got != 42 {
		t.Errorf("cell changed before rejection: %d", got)
	}
}
