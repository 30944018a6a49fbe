package binder

import (
	"reflect"

	"flatbind/mapping"
)

// ReflectPopulate builds a populate function that resolves every member
// through reflect on each call.
func ReflectPopulate[T any](mappings []mapping.PropertyMapping) (PopulateFunc[T], error) {
	if _, err := bind[T](mappings); err != nil {
		return nil, err
	}

	return func(entity *T, values []any) error {
		ev := reflect.ValueOf(entity).Elem()
		position := 0
		for _, m := range mappings {
			member, ok := m.Member()
			if !ok {
				continue
			}

			v := values[position]
			if !assign(member.Value(ev), v) {
				return mismatch(m.ColumnDefinition().ColumnName(), member.Name, member.Type, v)
			}
			position++
		}

		return nil
	}, nil
}

// ReflectExtract builds an extract function that resolves every member
// through reflect on each call.
func ReflectExtract[T any](mappings []mapping.PropertyMapping) (ExtractFunc[T], error) {
	if _, err := bind[T](mappings); err != nil {
		return nil, err
	}

	return func(entity *T) []any {
		ev := reflect.ValueOf(entity).Elem()
		values := make([]any, 0, len(mappings))
		for _, m := range mappings {
			if member, ok := m.Member(); ok {
				values = append(values, extract(member.Value(ev)))
			}
		}

		return values
	}, nil
}
