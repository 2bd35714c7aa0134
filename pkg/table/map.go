package table

import (
	"github.com/mesh-intelligence/datakit/pkg/value"
)

// MapFunc is a pure per-cell transform.
type MapFunc func(value.Value) value.Value

// Predicate gates a row by inspecting one cell.
type Predicate func(value.Value) bool

// ColumnPredicate evaluates a predicate against another column's cell in
// the same row.
type ColumnPredicate struct {
	Column ColumnID
	Pred   Predicate
}

// MapColumn applies a pure transform to every cell in a column. This is a
// data-cleaning pass, not part of validation.
func (t *Table) MapColumn(id ColumnID, fn MapFunc) error {
	ord, err := t.resolve(id)
	if err != nil {
		return err
	}
	col := t.columns[ord]
	for rowno := range col {
		col[rowno] = fn(col[rowno])
	}
	return nil
}

// MapColumnIf applies the transform only to rows where every predicate
// passes against its column's cell in that row. Predicate columns are
// resolved up front so an unknown id rejects the whole operation before
// any cell changes.
func (t *Table) MapColumnIf(id ColumnID, fn MapFunc, predicates []ColumnPredicate) error {
	ord, err := t.resolve(id)
	if err != nil {
		return err
	}
	ordinals := make([]int, len(predicates))
	for i, p := range predicates {
		pord, err := t.resolve(p.Column)
		if err != nil {
			return err
		}
		ordinals[i] = pord
	}

	col := t.columns[ord]
rows:
	for rowno := range col {
		for i, p := range predicates {
			if !p.Pred(t.columns[ordinals[i]][rowno]) {
				continue rows
			}
		}
		col[rowno] = fn(col[rowno])
	}
	return nil
}
