package table

import (
	"github.com/mesh-intelligence/datakit/pkg/contract"
)

// ColumnContract names one column and the contract its values must
// satisfy. Names are unique within a Schema.
type ColumnContract struct {
	Name          string
	ValueContract contract.ValueContract
}

// Equal reports structural equality of name and contract.
func (cc ColumnContract) Equal(other ColumnContract) bool {
	return cc.Name == other.Name && cc.ValueContract.Equal(other.ValueContract)
}

// Schema is an ordered, named list of column contracts describing a
// table's shape.
type Schema struct {
	ColumnContracts []ColumnContract
}

// NewSchema returns a schema over the given column contracts, in order.
func NewSchema(contracts ...ColumnContract) Schema {
	return Schema{ColumnContracts: contracts}
}

// Col is a convenience constructor for a column contract.
func Col(name string, vc contract.ValueContract) ColumnContract {
	return ColumnContract{Name: name, ValueContract: vc}
}
