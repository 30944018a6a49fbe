package column

import (
	"fmt"
	"strings"
)

// BooleanColumn carries bool values spelled as TrueString / FalseString.
type BooleanColumn struct {
	Name         string
	TrueString   string
	FalseString  string
	NullHandler  NullHandler
	Preprocessor func(string) string
}

func NewBooleanColumn(name string) *BooleanColumn {
	return &BooleanColumn{Name: name, TrueString: "true", FalseString: "false"}
}

func (c *BooleanColumn) ColumnName() string {
	return c.Name
}

// Parse matches TrueString and FalseString case-insensitively after trimming spaces.
func (c *BooleanColumn) Parse(text string) (any, error) {
	text = preprocess(c.Preprocessor, text)
	if nullHandlerOrDefault(c.NullHandler).IsNullValue(text) {
		return nil, nil
	}

	switch trimmed := strings.TrimSpace(text); {
	case strings.EqualFold(trimmed, c.TrueString):
		return true, nil
	case strings.EqualFold(trimmed, c.FalseString):
		return false, nil
	default:
		return nil, fmt.Errorf("%w: column %q, text %q is neither %q nor %q",
			ErrParse, c.Name, text, c.TrueString, c.FalseString)
	}
}

func (c *BooleanColumn) Format(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return nullHandlerOrDefault(c.NullHandler).NullValue(), nil
	case bool:
		if v {
			return c.TrueString, nil
		}
		return c.FalseString, nil
	default:
		return "", fmt.Errorf("%w: column %q expects bool, got %T", ErrFormat, c.Name, value)
	}
}
