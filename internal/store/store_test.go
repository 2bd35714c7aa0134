package store

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/datakit/pkg/contract"
	"github.com/mesh-intelligence/datakit/pkg/table"
	"github.com/mesh-intelligence/datakit/pkg/value"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"jsonl", Config{Backend: BackendJSONL, DataDir: "/tmp/x"}, nil},
		{"sqlite", Config{Backend: BackendSQLite, DataDir: "/tmp/x"}, nil},
		{"empty backend", Config{DataDir: "/tmp/x"}, ErrBackendEmpty},
		{"unknown backend", Config{Backend: "postgres", DataDir: "/tmp/x"}, ErrBackendUnknown},
		{"empty data dir", Config{Backend: BackendJSONL}, ErrDataDirEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); err != tt.wantErr {
				t.Errorf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.FromSchema(table.NewSchema(
		table.Col("name", contract.New(contract.IsType(value.TypeText))),
		table.Col("age", contract.New(contract.IsType(value.TypeNumber))),
	))
	rows := [][]value.Value{
		{value.NewText("Jim"), value.NewInt(42)},
		{value.NewText("Ada"), value.NewInt(36)},
	}
	for _, row := range rows {
		if err := tbl.AddRow(row); err != nil {
			t.Fatal(err)
		}
	}
	return tbl
}

func testStoreLifecycle(t *testing.T, backend string) {
	s, err := Open(Config{Backend: backend, DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer s.Close()

	tbl := sampleTable(t)

	saved, err := s.Save("people", tbl)
	if err != nil {
		t.Fatalf("Save error = %v", err)
	}
	if saved.ID == "" {
		t.Error("Save assigned no ID")
	}

	loaded, err := s.Load("people")
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if loaded.ID != saved.ID {
		t.Errorf("Load ID = %s, want %s", loaded.ID, saved.ID)
	}
	if loaded.Table == nil || loaded.Table.Len() != 2 || loaded.Table.NumColumns() != 2 {
		t.Fatalf("loaded table shape wrong: %+v", loaded.Table)
	}
	col, err := loaded.Table.Column(table.ByName("name"))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := col[0].AsText(); got != "Jim" {
		t.Errorf("cell = %q, want \"Jim\"", got)
	}

	// Re-saving under the same name keeps the identity.
	if err := tbl.AddRow([]value.Value{value.NewText("Mo"), value.NewInt(7)}); err != nil {
		t.Fatal(err)
	}
	resaved, err := s.Save("people", tbl)
	if err != nil {
		t.Fatal(err)
	}
	if resaved.ID != saved.ID {
		t.Errorf("re-save ID = %s, want %s", resaved.ID, saved.ID)
	}
	loaded, err = s.Load("people")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Table.Len() != 3 {
		t.Errorf("re-saved table rows = %d, want 3", loaded.Table.Len())
	}

	// List is ordered by name and carries no bodies.
	if _, err := s.Save("animals", sampleTable(t)); err != nil {
		t.Fatal(err)
	}
	datasets, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(datasets) != 2 || datasets[0].Name != "animals" || datasets[1].Name != "people" {
		t.Errorf("List = %+v, want [animals people]", datasets)
	}
	if datasets[0].Table != nil {
		t.Error("List carried a table body")
	}

	if err := s.Delete("animals"); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	if _, err := s.Load("animals"); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("Load after delete = %v, want ErrDatasetNotFound", err)
	}
	if err := s.Delete("animals"); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("second delete = %v, want ErrDatasetNotFound", err)
	}
}

func TestJSONLStore(t *testing.T) {
	testStoreLifecycle(t, BackendJSONL)
}

func TestSQLiteStore(t *testing.T) {
	testStoreLifecycle(t, BackendSQLite)
}

func TestStoreClosed(t *testing.T) {
	s, err := Open(Config{Backend: BackendJSONL, DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
	if _, err := s.Load("x"); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Load after close = %v, want ErrStoreClosed", err)
	}
	if _, err := s.List(); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("List after close = %v, want ErrStoreClosed", err)
	}
}

func TestLoadMissing(t *testing.T) {
	s, err := Open(Config{Backend: BackendJSONL, DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Load("nope"); !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("Load = %v, want ErrDatasetNotFound", err)
	}
	datasets, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(datasets) != 0 {
		t.Errorf("List = %d entries, want 0", len(datasets))
	}
}
