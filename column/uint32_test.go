package column

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"flatbind/options"
)

func TestUInt32Column_Parse(t *testing.T) {
	tests := []struct {
		name   string
		column func(c *UInt32Column)
		text   string
		want   any
	}{
		{name: "plain", text: "42", want: uint32(42)},
		{name: "surrounding whitespace", text: "  7\t", want: uint32(7)},
		{name: "leading plus", text: "+9", want: uint32(9)},
		{name: "negative zero", text: "-0", want: uint32(0)},
		{name: "negative zeros", text: " -000", want: uint32(0)},
		{name: "max", text: "4294967295", want: uint32(4294967295)},
		{name: "empty is null", text: "", want: nil},
		{name: "blank is null", text: "   ", want: nil},
		{
			name:   "thousands",
			column: func(c *UInt32Column) { c.Styles = options.StylesNumber },
			text:   "1,234,567",
			want:   uint32(1234567),
		},
		{
			name: "thousands with english locale",
			column: func(c *UInt32Column) {
				c.Styles = options.StylesNumber
				c.Locale = language.English
			},
			text: "12,000",
			want: uint32(12000),
		},
		{
			name:   "hex",
			column: func(c *UInt32Column) { c.Styles = options.AllowHexSpecifier },
			text:   "ff",
			want:   uint32(255),
		},
		{
			name:   "null token",
			column: func(c *UInt32Column) { c.NullHandler = ConstantNullHandler{Token: "NULL"} },
			text:   "NULL",
			want:   nil,
		},
		{
			name: "null token after preprocessing",
			column: func(c *UInt32Column) {
				c.NullHandler = ConstantNullHandler{Token: "NULL"}
				c.Preprocessor = func(s string) string { return strings.Trim(s, "[]") }
			},
			text: "[NULL]",
			want: nil,
		},
		{
			name:   "preprocessor strips decorations",
			column: func(c *UInt32Column) { c.Preprocessor = func(s string) string { return strings.TrimPrefix(s, "#") } },
			text:   "#15",
			want:   uint32(15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewUInt32Column("qty")
			if tt.column != nil {
				tt.column(c)
			}

			got, err := c.Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUInt32Column_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		styles options.NumberStyles
		text   string
	}{
		{name: "negative", styles: options.StylesInteger, text: "-1"},
		{name: "overflow", styles: options.StylesInteger, text: "4294967296"},
		{name: "letters", styles: options.StylesInteger, text: "12a"},
		{name: "whitespace not allowed", styles: options.StylesNone, text: " 1"},
		{name: "sign not allowed", styles: options.StylesNone, text: "+1"},
		{name: "negative zero without sign", styles: options.StylesNone, text: "-0"},
		{name: "double sign", styles: options.StylesInteger, text: "--0"},
		{name: "thousands not allowed", styles: options.StylesInteger, text: "1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewUInt32Column("qty")
			c.Styles = tt.styles

			_, err := c.Parse(tt.text)
			require.ErrorIs(t, err, ErrParse)
			assert.Contains(t, err.Error(), `"qty"`)
		})
	}
}

func TestUInt32Column_Format(t *testing.T) {
	c := NewUInt32Column("qty")

	got, err := c.Format(uint32(42))
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = c.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	c.OutputFormat = "%08d"
	got, err = c.Format(uint32(42))
	require.NoError(t, err)
	assert.Equal(t, "00000042", got)

	c.OutputFormat = "%d"
	c.Locale = language.English
	got, err = c.Format(uint32(1234567))
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", got)

	c.NullHandler = ConstantNullHandler{Token: "NULL"}
	got, err = c.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "NULL", got)

	_, err = c.Format(int64(1))
	require.ErrorIs(t, err, ErrFormat)
}

func TestUInt32Column_PanickingNullHandlerPropagates(t *testing.T) {
	c := NewUInt32Column("qty")
	c.NullHandler = panickyNullHandler{}

	assert.PanicsWithValue(t, "null check failed", func() {
		_, _ = c.Parse("1")
	})
}

type panickyNullHandler struct{}

func (panickyNullHandler) IsNullValue(string) bool { panic("null check failed") }
func (panickyNullHandler) NullValue() string       { panic("null check failed") }
