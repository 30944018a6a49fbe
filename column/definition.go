// Package column describes single logical columns of a flat file: their names,
// null handling and how one field's text becomes a typed value and back.
//
// A Definition never tokenizes a record. It receives the text of exactly one
// field and produces exactly one value (or nil for null), and the reverse.
package column

import "errors"

var (
	ErrParse  = errors.New("column: cannot parse field")
	ErrFormat = errors.New("column: cannot format value")
)

// Definition formats and parses one value of one logical column.
type Definition interface {
	// ColumnName is the name of the column in the file layout.
	ColumnName() string
	// Parse converts field text into a typed value. A nil value means null.
	Parse(text string) (any, error)
	// Format converts a typed value (or nil) into field text.
	Format(value any) (string, error)
}

// preprocess applies fn to text when fn is set.
func preprocess(fn func(string) string, text string) string {
	if fn == nil {
		return text
	}

	return fn(text)
}
