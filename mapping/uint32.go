package mapping

import (
	"reflect"

	"golang.org/x/text/language"

	"flatbind/column"
	"flatbind/options"
)

// UInt32PropertyMapping maps a uint32 or *uint32 field to an unsigned int column.
type UInt32PropertyMapping struct {
	column *column.UInt32Column
	member Member
}

// UInt32 maps member to a new column named after it. It panics when the member
// is neither uint32 nor *uint32.
func UInt32(member Member) *UInt32PropertyMapping {
	requireType(member, reflect.TypeFor[uint32]())

	return &UInt32PropertyMapping{
		column: column.NewUInt32Column(member.Name),
		member: member,
	}
}

// ColumnName sets the name of the column in the input or output file.
func (m *UInt32PropertyMapping) ColumnName(name string) *UInt32PropertyMapping {
	m.column.Name = name
	return m
}

// FormatProvider sets the locale used for group separators and OutputFormat.
func (m *UInt32PropertyMapping) FormatProvider(locale language.Tag) *UInt32PropertyMapping {
	m.column.Locale = locale
	return m
}

// NumberStyles sets the decorations accepted when parsing the input.
func (m *UInt32PropertyMapping) NumberStyles(styles options.NumberStyles) *UInt32PropertyMapping {
	m.column.Styles = styles
	return m
}

// OutputFormat sets the fmt pattern used when writing values.
func (m *UInt32PropertyMapping) OutputFormat(format string) *UInt32PropertyMapping {
	m.column.OutputFormat = format
	return m
}

// NullValue sets the literal text treated as null.
func (m *UInt32PropertyMapping) NullValue(token string) *UInt32PropertyMapping {
	m.column.NullHandler = column.ConstantNullHandler{Token: token}
	return m
}

// NullHandler sets a custom null policy. Nil restores the default handler.
func (m *UInt32PropertyMapping) NullHandler(handler column.NullHandler) *UInt32PropertyMapping {
	m.column.NullHandler = handler
	return m
}

// Preprocessor sets a function applied to field text before it is parsed.
func (m *UInt32PropertyMapping) Preprocessor(fn func(string) string) *UInt32PropertyMapping {
	m.column.Preprocessor = fn
	return m
}

func (m *UInt32PropertyMapping) Member() (Member, bool) {
	return m.member, true
}

func (m *UInt32PropertyMapping) ColumnDefinition() column.Definition {
	return m.column
}
