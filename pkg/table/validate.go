package table

// ValidateColumnAgainstContract checks every value in a column against an
// externally supplied contract, decoupling what the column currently
// requires from what is being checked. The scan is exhaustive: every
// failing row is reported, in row order.
func (t *Table) ValidateColumnAgainstContract(id ColumnID, cc ColumnContract) error {
	ord, err := t.resolve(id)
	if err != nil {
		return err
	}
	var invalid []InvalidRow
	for rowno, v := range t.columns[ord] {
		if verr := cc.ValueContract.Validate(v); verr != nil {
			invalid = append(invalid, InvalidRow{Row: rowno, Err: verr})
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	return &TableError{Kind: TableErrColumn, Column: &ColumnError{
		Kind:     ColumnErrInvalidValues,
		Contract: cc,
		Errors:   invalid,
	}}
}

// ValidateColumn checks one column against its own contract.
func (t *Table) ValidateColumn(id ColumnID) error {
	ord, err := t.resolve(id)
	if err != nil {
		return err
	}
	return t.ValidateColumnAgainstContract(ByOrdinal(ord), t.contracts[ord])
}

// ValidateTable checks every column against its own contract, in ordinal
// order, and aggregates failures into a column-name-keyed map. An empty
// map means the table is valid.
func (t *Table) ValidateTable() error {
	return t.validateAgainstContracts(t.contracts, true)
}

// ValidateTableAgainstSchema checks the table against an externally
// supplied schema. In strict mode, table columns beyond the schema's
// contract list are reported as unknown. In lenient mode, validation
// stops once the shorter of the two is exhausted and the extra columns go
// unchecked.
func (t *Table) ValidateTableAgainstSchema(schema Schema, strict bool) error {
	return t.validateAgainstContracts(schema.ColumnContracts, strict)
}

// validateAgainstContracts pairs table columns with contracts by ordinal.
// Result keys are the table's own column names, even when checking
// against foreign contracts.
func (t *Table) validateAgainstContracts(contracts []ColumnContract, strict bool) error {
	result := make(map[string][]InvalidRow)

	for ordinal := range t.columns {
		if ordinal >= len(contracts) {
			if !strict {
				break
			}
			return &TableError{Kind: TableErrColumn, Column: unknownColumn(ByOrdinal(ordinal))}
		}
		err := t.ValidateColumnAgainstContract(ByOrdinal(ordinal), contracts[ordinal])
		if err == nil {
			continue
		}
		terr, ok := err.(*TableError)
		if !ok || terr.Column == nil || terr.Column.Kind != ColumnErrInvalidValues {
			return err
		}
		result[t.contracts[ordinal].Name] = terr.Column.Errors
	}

	if len(result) == 0 {
		return nil
	}
	return &TableError{Kind: TableErrInvalidData, Invalid: result}
}

// CheckCompatibility diffs the table's contracts against a schema. For
// every column the schema names: absent from the table reports a missing
// column; present with a structurally different contract reports a
// conflict. Table columns the schema does not mention are ignored. This
// is a structural diff, not a data scan.
func (t *Table) CheckCompatibility(schema Schema) error {
	var findings []SchemaError

	for _, theirs := range schema.ColumnContracts {
		ord := t.columnOrder(theirs.Name)
		if ord < 0 {
			findings = append(findings, SchemaError{
				Kind:    SchemaErrMissingColumn,
				Missing: theirs.Name,
			})
			continue
		}
		ours := t.contracts[ord]
		if !theirs.ValueContract.Equal(ours.ValueContract) {
			findings = append(findings, SchemaError{
				Kind:     SchemaErrConflict,
				Expected: theirs,
				Received: ours,
			})
		}
	}

	if len(findings) == 0 {
		return nil
	}
	return &SchemaValidationError{SchemaErrors: findings}
}
