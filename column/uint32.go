package column

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"flatbind/options"
)

// UInt32Column parses and formats uint32 values.
type UInt32Column struct {
	Name string
	// Locale is the culture used for group separators and OutputFormat.
	// language.Und formats with the fmt package and groups with ",".
	Locale language.Tag
	// Styles selects which decorations Parse accepts. With AllowLeadingSign a
	// '-' is accepted only for zero ("-0").
	Styles options.NumberStyles
	// OutputFormat is a fmt verb pattern such as "%08d". Empty writes plain decimal digits.
	OutputFormat string
	// NullHandler recognizes null text. Nil means DefaultNullHandler.
	NullHandler NullHandler
	// Preprocessor rewrites raw field text before the null check and parsing.
	Preprocessor func(string) string
}

// NewUInt32Column returns a column accepting StylesInteger input.
func NewUInt32Column(name string) *UInt32Column {
	return &UInt32Column{
		Name:   name,
		Styles: options.StylesInteger,
	}
}

func (c *UInt32Column) ColumnName() string {
	return c.Name
}

// Parse returns a uint32, or nil when the preprocessed text is null.
func (c *UInt32Column) Parse(text string) (any, error) {
	text = preprocess(c.Preprocessor, text)
	if nullHandlerOrDefault(c.NullHandler).IsNullValue(text) {
		return nil, nil
	}

	n, err := parseUnsigned(text, c.Styles, c.Locale, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: column %q, text %q: %w", ErrParse, c.Name, text, err)
	}

	return uint32(n), nil
}

// Format writes a uint32 (or nil as the null token).
func (c *UInt32Column) Format(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return nullHandlerOrDefault(c.NullHandler).NullValue(), nil
	case uint32:
		if c.OutputFormat == "" {
			return strconv.FormatUint(uint64(v), 10), nil
		}

		return sprintf(c.Locale, c.OutputFormat, v), nil
	default:
		return "", fmt.Errorf("%w: column %q expects uint32, got %T", ErrFormat, c.Name, value)
	}
}

func parseUnsigned(text string, styles options.NumberStyles, locale language.Tag, bitSize int) (uint64, error) {
	s := text
	if styles.Has(options.AllowLeadingWhite) {
		s = strings.TrimLeft(s, " \t")
	}

	if styles.Has(options.AllowTrailingWhite) {
		s = strings.TrimRight(s, " \t")
	}

	negative := false
	if styles.Has(options.AllowLeadingSign) {
		switch {
		case strings.HasPrefix(s, "+"):
			s = s[1:]
		case strings.HasPrefix(s, "-"):
			s, negative = s[1:], true
		}
	}

	base := 10
	switch {
	case styles.Has(options.AllowHexSpecifier):
		base = 16
	case styles.Has(options.AllowThousands):
		s = strings.ReplaceAll(s, groupSeparator(locale), "")
	}

	n, err := strconv.ParseUint(s, base, bitSize)
	if err == nil && negative && n != 0 {
		return 0, &strconv.NumError{Func: "ParseUint", Num: text, Err: strconv.ErrRange}
	}

	return n, err
}
