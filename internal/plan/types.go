package plan

import (
	"flatbind/internal/analyze"
	"flatbind/internal/diagnostic"
)

// Plan is the resolved form of one layout file.
type Plan struct {
	// PackagePath is the import path of the entity package.
	PackagePath string
	// PackageName is the declared name of the entity package.
	PackageName string
	// Output is the file name requested by the layout, if any.
	Output   string
	Entities []EntityPlan
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// EntityPlan describes the functions generated for one entity type.
type EntityPlan struct {
	Type     *analyze.TypeInfo
	Populate string
	Extract  string
	// Columns in file order, ignored ones included.
	Columns []ColumnPlan
}

// Bound returns the columns that take a value array slot, in slot order.
func (e EntityPlan) Bound() []ColumnPlan {
	bound := make([]ColumnPlan, 0, len(e.Columns))
	for _, c := range e.Columns {
		if c.Slot >= 0 {
			bound = append(bound, c)
		}
	}

	return bound
}

// UsesTime reports whether generated code for e refers to package time.
func (e EntityPlan) UsesTime() bool {
	for _, c := range e.Columns {
		if c.Slot >= 0 && c.Shape != ShapeGeneric && c.UsesTime {
			return true
		}
	}

	return false
}

// ColumnPlan is one resolved column.
type ColumnPlan struct {
	Name  string
	Field string
	// Slot is the index into the value array, -1 for an ignored column.
	Slot  int
	Shape Shape
	// ValueType is the Go type a value must have to be stored without the
	// fallback: the field type for ShapeDirect, its element for ShapeNullable.
	ValueType string
	// UsesTime is set when ValueType refers to package time.
	UsesTime bool
}

// Shape selects the code emitted for one bound column.
type Shape int

const (
	// ShapeDirect is a field of an exact primitive type, stored by type assertion.
	ShapeDirect Shape = iota + 1
	// ShapeNullable is a pointer to an exact primitive type; nil clears it.
	ShapeNullable
	// ShapeGeneric covers everything else and goes through binder.Assign.
	ShapeGeneric
)

func (s Shape) String() string {
	switch s {
	case ShapeDirect:
		return "direct"
	case ShapeNullable:
		return "nullable"
	case ShapeGeneric:
		return "generic"
	default:
		return "none"
	}
}
