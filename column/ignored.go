package column

// IgnoredColumn occupies a position in the file without carrying a value.
type IgnoredColumn struct {
	Name string
}

func NewIgnoredColumn() *IgnoredColumn {
	return &IgnoredColumn{}
}

func (c *IgnoredColumn) ColumnName() string {
	return c.Name
}

// Parse discards text.
func (c *IgnoredColumn) Parse(string) (any, error) {
	return nil, nil
}

// Format always writes an empty field.
func (c *IgnoredColumn) Format(any) (string, error) {
	return "", nil
}
