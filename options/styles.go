package options

// NumberStyles controls which decorations are accepted when numeric column text is parsed.
type NumberStyles int

const (
	AllowLeadingWhite  NumberStyles = 1 << iota // spaces and tabs before the number
	AllowTrailingWhite                          // spaces and tabs after the number
	AllowLeadingSign                            // a leading '+', or '-' on zero for unsigned columns
	AllowThousands                              // locale group separators between digits, e.g. 1,234,567
	AllowHexSpecifier                           // hexadecimal digits without a 0x prefix; excludes AllowThousands

	// StylesAll combines every style.
	StylesAll NumberStyles = (1 << iota) - 1
	// StylesNone accepts digits only.
	StylesNone NumberStyles = 0
	// StylesInteger is the default for integer columns.
	StylesInteger NumberStyles = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	// StylesNumber is StylesInteger plus group separators.
	StylesNumber NumberStyles = StylesInteger | AllowThousands
)

// Has reports whether every bit of flag is set.
func (s NumberStyles) Has(flag NumberStyles) bool {
	return s&flag == flag
}
