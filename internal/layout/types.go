package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the root of a layout file.
type File struct {
	Version  string   `yaml:"version"`
	Package  string   `yaml:"package"`
	Output   string   `yaml:"output,omitempty"`
	Entities []Entity `yaml:"entities"`
}

// Entity lists the columns of one entity type.
type Entity struct {
	Type     string   `yaml:"type"`
	Populate string   `yaml:"populate,omitempty"`
	Extract  string   `yaml:"extract,omitempty"`
	Columns  []Column `yaml:"columns"`
}

// Column is one position of the record.
type Column struct {
	Field  string `yaml:"field,omitempty"`
	Name   string `yaml:"name,omitempty"`
	Ignore bool   `yaml:"ignore,omitempty"`
}

// ColumnName returns Name, falling back to the field name.
func (c Column) ColumnName() string {
	if c.Name != "" {
		return c.Name
	}

	return c.Field
}

// IsBound reports whether the column takes a slot in the value array.
func (c Column) IsBound() bool {
	return !c.Ignore
}

// UnmarshalYAML accepts either a mapping or a scalar shorthand:
// "Field" binds the field, "-" is an unnamed ignored column.
func (c *Column) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		if s == "-" {
			*c = Column{Ignore: true}
		} else {
			*c = Column{Field: s}
		}

		return nil

	case yaml.MappingNode:
		type plain Column

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*c = Column(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected column name or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes bound columns without a custom name as the scalar shorthand.
func (c Column) MarshalYAML() (any, error) {
	switch {
	case c.Ignore && c.Name == "":
		return "-", nil
	case !c.Ignore && c.Name == "":
		return c.Field, nil
	default:
		type plain Column
		return plain(c), nil
	}
}

// PopulateFunc returns the name of the generated populate function.
func (e Entity) PopulateFunc() string {
	if e.Populate != "" {
		return e.Populate
	}

	return "Populate" + e.Type
}

// ExtractFunc returns the name of the generated extract function.
func (e Entity) ExtractFunc() string {
	if e.Extract != "" {
		return e.Extract
	}

	return "Extract" + e.Type
}
