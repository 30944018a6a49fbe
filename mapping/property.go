package mapping

import "flatbind/column"

// PropertyMapping binds one logical column to an optional entity member.
type PropertyMapping interface {
	// Member returns the backing field, or false for a column without one.
	Member() (Member, bool)
	// ColumnDefinition is never nil, not even for ignored columns.
	ColumnDefinition() column.Definition
}

// ColumnNames lists every column name in file order, ignored columns included.
func ColumnNames(mappings []PropertyMapping) []string {
	names := make([]string, len(mappings))
	for i, m := range mappings {
		names[i] = m.ColumnDefinition().ColumnName()
	}

	return names
}

// BoundCount is the length of the value array exchanged for mappings.
func BoundCount(mappings []PropertyMapping) int {
	n := 0
	for _, m := range mappings {
		if _, ok := m.Member(); ok {
			n++
		}
	}

	return n
}
