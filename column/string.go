package column

import (
	"fmt"
	"strings"
)

// StringColumn carries text values.
// Without a NullHandler no text is treated as null, so empty fields parse to "".
type StringColumn struct {
	Name         string
	Trim         bool
	NullHandler  NullHandler
	Preprocessor func(string) string
}

func NewStringColumn(name string) *StringColumn {
	return &StringColumn{Name: name, Trim: true}
}

func (c *StringColumn) ColumnName() string {
	return c.Name
}

func (c *StringColumn) Parse(text string) (any, error) {
	text = preprocess(c.Preprocessor, text)
	if c.NullHandler != nil && c.NullHandler.IsNullValue(text) {
		return nil, nil
	}

	if c.Trim {
		text = strings.TrimSpace(text)
	}

	return text, nil
}

func (c *StringColumn) Format(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		if c.NullHandler == nil {
			return "", nil
		}
		return c.NullHandler.NullValue(), nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("%w: column %q expects string, got %T", ErrFormat, c.Name, value)
	}
}
