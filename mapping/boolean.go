package mapping

import (
	"reflect"

	"flatbind/column"
)

type BooleanPropertyMapping struct {
	column *column.BooleanColumn
	member Member
}

func Boolean(member Member) *BooleanPropertyMapping {
	requireType(member, reflect.TypeFor[bool]())

	return &BooleanPropertyMapping{
		column: column.NewBooleanColumn(member.Name),
		member: member,
	}
}

func (m *BooleanPropertyMapping) ColumnName(name string) *BooleanPropertyMapping {
	m.column.Name = name
	return m
}

// TrueString sets the text written for true and matched when parsing.
func (m *BooleanPropertyMapping) TrueString(s string) *BooleanPropertyMapping {
	m.column.TrueString = s
	return m
}

// FalseString sets the text written for false and matched when parsing.
func (m *BooleanPropertyMapping) FalseString(s string) *BooleanPropertyMapping {
	m.column.FalseString = s
	return m
}

func (m *BooleanPropertyMapping) NullValue(token string) *BooleanPropertyMapping {
	m.column.NullHandler = column.ConstantNullHandler{Token: token}
	return m
}

func (m *BooleanPropertyMapping) NullHandler(handler column.NullHandler) *BooleanPropertyMapping {
	m.column.NullHandler = handler
	return m
}

func (m *BooleanPropertyMapping) Preprocessor(fn func(string) string) *BooleanPropertyMapping {
	m.column.Preprocessor = fn
	return m
}

func (m *BooleanPropertyMapping) Member() (Member, bool) {
	return m.member, true
}

func (m *BooleanPropertyMapping) ColumnDefinition() column.Definition {
	return m.column
}
