package mapping

import "flatbind/column"

// IgnoredMapping holds a column position that no entity member backs.
type IgnoredMapping struct {
	column *column.IgnoredColumn
}

func Ignored() *IgnoredMapping {
	return &IgnoredMapping{column: column.NewIgnoredColumn()}
}

// ColumnName sets the name of the column in the input or output file.
func (m *IgnoredMapping) ColumnName(name string) *IgnoredMapping {
	m.column.Name = name
	return m
}

// Member always reports false: ignored columns never take a value slot.
func (m *IgnoredMapping) Member() (Member, bool) {
	return Member{}, false
}

func (m *IgnoredMapping) ColumnDefinition() column.Definition {
	return m.column
}
