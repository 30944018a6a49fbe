package column

import "strings"

// NullHandler decides which field text stands for a missing value.
type NullHandler interface {
	// IsNullValue reports whether text represents null.
	IsNullValue(text string) bool
	// NullValue is the text written for a null value.
	NullValue() string
}

// DefaultNullHandler treats empty and whitespace-only text as null and writes null as "".
type DefaultNullHandler struct{}

func (DefaultNullHandler) IsNullValue(text string) bool {
	return strings.TrimSpace(text) == ""
}

func (DefaultNullHandler) NullValue() string {
	return ""
}

// ConstantNullHandler treats one literal token as null.
type ConstantNullHandler struct {
	Token string
}

func (h ConstantNullHandler) IsNullValue(text string) bool {
	return text == h.Token
}

func (h ConstantNullHandler) NullValue() string {
	return h.Token
}

// nullHandlerOrDefault returns h, or the default handler when h is nil.
func nullHandlerOrDefault(h NullHandler) NullHandler {
	if h == nil {
		return DefaultNullHandler{}
	}

	return h
}
