// Wire representation for tables, schemas and table errors. Union
// variants serialize as a single lower-camel-case field; unit variants as
// bare strings. Validation reports are consumed by external tooling in
// this shape, so it must be preserved exactly.
package table

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/datakit/pkg/contract"
	"github.com/mesh-intelligence/datakit/pkg/value"
)

// MarshalJSON encodes a column id as {"ordinal": 3} or {"name": "age"}.
func (id ColumnID) MarshalJSON() ([]byte, error) {
	switch id.Kind {
	case ColumnByOrdinal:
		return value.MarshalTagged("ordinal", id.Ordinal)
	case ColumnByName:
		return value.MarshalTagged("name", id.Name)
	}
	return nil, fmt.Errorf("invalid column id kind %d", int(id.Kind))
}

// UnmarshalJSON decodes a column id.
func (id *ColumnID) UnmarshalJSON(data []byte) error {
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "ordinal":
		id.Kind = ColumnByOrdinal
		id.Name = ""
		return json.Unmarshal(raw, &id.Ordinal)
	case "name":
		id.Kind = ColumnByName
		id.Ordinal = 0
		return json.Unmarshal(raw, &id.Name)
	}
	return fmt.Errorf("unknown column id variant %q", tag)
}

type columnContractJSON struct {
	Name          string                 `json:"name"`
	ValueContract contract.ValueContract `json:"valueContract"`
}

// MarshalJSON encodes the column contract with camelCase fields.
func (cc ColumnContract) MarshalJSON() ([]byte, error) {
	return json.Marshal(columnContractJSON{Name: cc.Name, ValueContract: cc.ValueContract})
}

// UnmarshalJSON decodes the column contract.
func (cc *ColumnContract) UnmarshalJSON(data []byte) error {
	var cj columnContractJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	cc.Name = cj.Name
	cc.ValueContract = cj.ValueContract
	return nil
}

type schemaJSON struct {
	ColumnContracts []ColumnContract `json:"columnContracts"`
}

// MarshalJSON encodes the schema.
func (s Schema) MarshalJSON() ([]byte, error) {
	contracts := s.ColumnContracts
	if contracts == nil {
		contracts = []ColumnContract{}
	}
	return json.Marshal(schemaJSON{ColumnContracts: contracts})
}

// UnmarshalJSON decodes the schema.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var sj schemaJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	s.ColumnContracts = sj.ColumnContracts
	return nil
}

type tableJSON struct {
	Columns         []Column         `json:"columns"`
	ColumnContracts []ColumnContract `json:"columnContracts"`
	ColLength       int              `json:"colLength"`
	RowLength       int              `json:"rowLength"`
}

// MarshalJSON encodes the full table, data and contracts.
func (t *Table) MarshalJSON() ([]byte, error) {
	columns := t.columns
	if columns == nil {
		columns = []Column{}
	}
	for i, col := range columns {
		if col == nil {
			columns[i] = Column{}
		}
	}
	contracts := t.contracts
	if contracts == nil {
		contracts = []ColumnContract{}
	}
	return json.Marshal(tableJSON{
		Columns:         columns,
		ColumnContracts: contracts,
		ColLength:       t.colLength,
		RowLength:       t.rowLength,
	})
}

// UnmarshalJSON decodes a table, restoring the shape invariants from the
// serialized lengths.
func (t *Table) UnmarshalJSON(data []byte) error {
	var tj tableJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return err
	}
	if len(tj.Columns) != len(tj.ColumnContracts) {
		return fmt.Errorf("table has %d columns but %d contracts", len(tj.Columns), len(tj.ColumnContracts))
	}
	for _, col := range tj.Columns {
		if len(col) != tj.RowLength {
			return fmt.Errorf("column length %d does not match row length %d", len(col), tj.RowLength)
		}
	}
	t.columns = tj.Columns
	t.contracts = tj.ColumnContracts
	t.colLength = len(tj.Columns)
	t.rowLength = tj.RowLength
	return nil
}

// MarshalJSON encodes the pair as a two-element [rowIndex, error] array.
func (r InvalidRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.Row, r.Err})
}

// UnmarshalJSON decodes the pair.
func (r *InvalidRow) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &r.Row); err != nil {
		return err
	}
	r.Err = &contract.ValidationError{}
	return json.Unmarshal(pair[1], r.Err)
}

type alreadyExistsJSON struct {
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
}

type invalidValuesJSON struct {
	Contract ColumnContract `json:"contract"`
	Errors   []InvalidRow   `json:"errors"`
}

// MarshalJSON encodes a column error in its tagged form.
func (e *ColumnError) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case ColumnErrUnknown:
		return value.MarshalTagged("unknown", e.ID)
	case ColumnErrAlreadyExists:
		return value.MarshalTagged("alreadyExists", alreadyExistsJSON{Ordinal: e.Ordinal, Name: e.Name})
	case ColumnErrInvalidValues:
		errs := e.Errors
		if errs == nil {
			errs = []InvalidRow{}
		}
		return value.MarshalTagged("containsInvalidValues", invalidValuesJSON{Contract: e.Contract, Errors: errs})
	}
	return nil, fmt.Errorf("invalid column error kind %d", int(e.Kind))
}

// UnmarshalJSON decodes a column error.
func (e *ColumnError) UnmarshalJSON(data []byte) error {
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "unknown":
		*e = ColumnError{Kind: ColumnErrUnknown}
		return json.Unmarshal(raw, &e.ID)
	case "alreadyExists":
		var ae alreadyExistsJSON
		if err := json.Unmarshal(raw, &ae); err != nil {
			return err
		}
		*e = ColumnError{Kind: ColumnErrAlreadyExists, Ordinal: ae.Ordinal, Name: ae.Name}
		return nil
	case "containsInvalidValues":
		var iv invalidValuesJSON
		if err := json.Unmarshal(raw, &iv); err != nil {
			return err
		}
		*e = ColumnError{Kind: ColumnErrInvalidValues, Contract: iv.Contract, Errors: iv.Errors}
		return nil
	}
	return fmt.Errorf("unknown column error variant %q", tag)
}

// MarshalJSON encodes a table error as "dimensionError",
// {"columnError": ...} or {"invalidData": {...}}.
func (e *TableError) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case TableErrDimension:
		return json.Marshal("dimensionError")
	case TableErrColumn:
		return value.MarshalTagged("columnError", e.Column)
	case TableErrInvalidData:
		invalid := e.Invalid
		if invalid == nil {
			invalid = map[string][]InvalidRow{}
		}
		return value.MarshalTagged("invalidData", invalid)
	}
	return nil, fmt.Errorf("invalid table error kind %d", int(e.Kind))
}

// UnmarshalJSON decodes a table error.
func (e *TableError) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "dimensionError" {
			return fmt.Errorf("unknown table error variant %q", name)
		}
		*e = TableError{Kind: TableErrDimension}
		return nil
	}
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "columnError":
		*e = TableError{Kind: TableErrColumn, Column: &ColumnError{}}
		return json.Unmarshal(raw, e.Column)
	case "invalidData":
		*e = TableError{Kind: TableErrInvalidData}
		return json.Unmarshal(raw, &e.Invalid)
	}
	return fmt.Errorf("unknown table error variant %q", tag)
}

type conflictJSON struct {
	Expected ColumnContract `json:"expected"`
	Received ColumnContract `json:"received"`
}

// MarshalJSON encodes a schema error in its tagged form.
func (e SchemaError) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case SchemaErrConflict:
		return value.MarshalTagged("conflictingConstraints", conflictJSON{Expected: e.Expected, Received: e.Received})
	case SchemaErrMissingColumn:
		return value.MarshalTagged("missingColumn", e.Missing)
	}
	return nil, fmt.Errorf("invalid schema error kind %d", int(e.Kind))
}

// UnmarshalJSON decodes a schema error.
func (e *SchemaError) UnmarshalJSON(data []byte) error {
	tag, raw, err := value.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "conflictingConstraints":
		var cj conflictJSON
		if err := json.Unmarshal(raw, &cj); err != nil {
			return err
		}
		*e = SchemaError{Kind: SchemaErrConflict, Expected: cj.Expected, Received: cj.Received}
		return nil
	case "missingColumn":
		*e = SchemaError{Kind: SchemaErrMissingColumn}
		return json.Unmarshal(raw, &e.Missing)
	}
	return fmt.Errorf("unknown schema error variant %q", tag)
}

type schemaValidationErrorJSON struct {
	SchemaErrors []SchemaError `json:"schemaErrors"`
}

// MarshalJSON encodes the aggregated compatibility findings.
func (e *SchemaValidationError) MarshalJSON() ([]byte, error) {
	errs := e.SchemaErrors
	if errs == nil {
		errs = []SchemaError{}
	}
	return json.Marshal(schemaValidationErrorJSON{SchemaErrors: errs})
}

// UnmarshalJSON decodes the aggregated compatibility findings.
func (e *SchemaValidationError) UnmarshalJSON(data []byte) error {
	var sj schemaValidationErrorJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	e.SchemaErrors = sj.SchemaErrors
	return nil
}
