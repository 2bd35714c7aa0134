package table

import (
	"runtime"
	"sort"
	"sync"
)

// Parallel validation. Each task reads a disjoint, read-only slice of the
// table, so there is no shared mutable state; results are merged into the
// same shapes the sequential paths produce, and the merge is commutative,
// so task scheduling cannot change the outcome. Callers must not mutate
// the table while a parallel validation is in flight.

// ValidateColumnPar validates one column against its own contract,
// splitting the rows across workers. The result is identical to
// ValidateColumn.
func (t *Table) ValidateColumnPar(id ColumnID) error {
	ord, err := t.resolve(id)
	if err != nil {
		return err
	}
	cc := t.contracts[ord]
	column := t.columns[ord]

	workers := runtime.GOMAXPROCS(0)
	if workers > len(column) {
		workers = len(column)
	}
	if workers < 2 {
		return t.ValidateColumn(ByOrdinal(ord))
	}

	chunks := make([][]InvalidRow, workers)
	chunkSize := (len(column) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > len(column) {
			hi = len(column)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			var invalid []InvalidRow
			for rowno := lo; rowno < hi; rowno++ {
				if verr := cc.ValueContract.Validate(column[rowno]); verr != nil {
					invalid = append(invalid, InvalidRow{Row: rowno, Err: verr})
				}
			}
			chunks[w] = invalid
		}(w, lo, hi)
	}
	wg.Wait()

	var invalid []InvalidRow
	for _, chunk := range chunks {
		invalid = append(invalid, chunk...)
	}
	// Chunks are row-ordered and disjoint; a sort keeps the contract that
	// errors appear in row order even if chunk boundaries change.
	sort.Slice(invalid, func(i, j int) bool { return invalid[i].Row < invalid[j].Row })

	if len(invalid) == 0 {
		return nil
	}
	return &TableError{Kind: TableErrColumn, Column: &ColumnError{
		Kind:     ColumnErrInvalidValues,
		Contract: cc,
		Errors:   invalid,
	}}
}

// ValidateTablePar validates every column against its own contract with
// one independent task per column, merging per-column results into the
// same name-keyed map ValidateTable produces. The map is keyed, so merge
// order does not affect the final result.
func (t *Table) ValidateTablePar() error {
	type columnResult struct {
		name   string
		errors []InvalidRow
	}

	results := make([]columnResult, t.colLength)
	var wg sync.WaitGroup
	for ordinal := 0; ordinal < t.colLength; ordinal++ {
		wg.Add(1)
		go func(ordinal int) {
			defer wg.Done()
			err := t.ValidateColumnPar(ByOrdinal(ordinal))
			if err == nil {
				return
			}
			if terr, ok := err.(*TableError); ok && terr.Column != nil && terr.Column.Kind == ColumnErrInvalidValues {
				results[ordinal] = columnResult{
					name:   t.contracts[ordinal].Name,
					errors: terr.Column.Errors,
				}
			}
		}(ordinal)
	}
	wg.Wait()

	invalid := make(map[string][]InvalidRow)
	for _, r := range results {
		if r.errors != nil {
			invalid[r.name] = r.errors
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	return &TableError{Kind: TableErrInvalidData, Invalid: invalid}
}
