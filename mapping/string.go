package mapping

import (
	"reflect"

	"flatbind/column"
)

// StringPropertyMapping maps a string or *string field to a text column.
type StringPropertyMapping struct {
	column *column.StringColumn
	member Member
}

func String(member Member) *StringPropertyMapping {
	requireType(member, reflect.TypeFor[string]())

	return &StringPropertyMapping{
		column: column.NewStringColumn(member.Name),
		member: member,
	}
}

func (m *StringPropertyMapping) ColumnName(name string) *StringPropertyMapping {
	m.column.Name = name
	return m
}

// Trim controls whether surrounding whitespace is removed from parsed text.
func (m *StringPropertyMapping) Trim(trim bool) *StringPropertyMapping {
	m.column.Trim = trim
	return m
}

func (m *StringPropertyMapping) NullValue(token string) *StringPropertyMapping {
	m.column.NullHandler = column.ConstantNullHandler{Token: token}
	return m
}

// NullHandler sets a custom null policy. Nil turns null detection off.
func (m *StringPropertyMapping) NullHandler(handler column.NullHandler) *StringPropertyMapping {
	m.column.NullHandler = handler
	return m
}

func (m *StringPropertyMapping) Preprocessor(fn func(string) string) *StringPropertyMapping {
	m.column.Preprocessor = fn
	return m
}

func (m *StringPropertyMapping) Member() (Member, bool) {
	return m.member, true
}

func (m *StringPropertyMapping) ColumnDefinition() column.Definition {
	return m.column
}
