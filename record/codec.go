// Package record turns the fields of one flat-file record into an entity and back.
//
// It stands where a tokenizer and writer would: it receives fields already split
// out of a line, parses each with its column definition and hands the bound
// values to a binder. Splitting and joining lines is left to the caller.
package record

import (
	"errors"
	"fmt"

	"flatbind/binder"
	"flatbind/column"
	"flatbind/mapping"
)

var ErrFieldCount = errors.New("record: wrong number of fields")

// Codec decodes and encodes records of entity type T.
type Codec[T any] struct {
	binder  *binder.Binder[T]
	columns []column.Definition
	bound   []bool
}

func NewCodec[T any](mappings []mapping.PropertyMapping, strategy binder.Strategy) (*Codec[T], error) {
	b, err := binder.New[T](mappings, strategy)
	if err != nil {
		return nil, err
	}

	c := &Codec[T]{
		binder:  b,
		columns: make([]column.Definition, len(mappings)),
		bound:   make([]bool, len(mappings)),
	}

	for i, m := range mappings {
		c.columns[i] = m.ColumnDefinition()
		_, c.bound[i] = m.Member()
	}

	return c, nil
}

// ColumnNames is the header of the file layout.
func (c *Codec[T]) ColumnNames() []string {
	return c.binder.ColumnNames()
}

// Decode parses fields, one per column, into a new entity.
func (c *Codec[T]) Decode(fields []string) (*T, error) {
	if len(fields) != len(c.columns) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), len(c.columns))
	}

	values := make([]any, 0, c.binder.BoundCount())
	for i, def := range c.columns {
		v, err := def.Parse(fields[i])
		if err != nil {
			return nil, fmt.Errorf("record: field %d: %w", i, err)
		}

		if c.bound[i] {
			values = append(values, v)
		}
	}

	var entity T
	if err := c.binder.Populate(&entity, values); err != nil {
		return nil, err
	}

	return &entity, nil
}

// Encode formats the members of entity into one field per column.
func (c *Codec[T]) Encode(entity *T) ([]string, error) {
	values := c.binder.Extract(entity)

	fields := make([]string, len(c.columns))
	position := 0
	for i, def := range c.columns {
		var v any
		if c.bound[i] {
			v = values[position]
			position++
		}

		text, err := def.Format(v)
		if err != nil {
			return nil, fmt.Errorf("record: field %d: %w", i, err)
		}
		fields[i] = text
	}

	return fields, nil
}
