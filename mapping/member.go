package mapping

import (
	"errors"
	"fmt"
	"reflect"

	"flatbind/internal/match"
)

var (
	ErrNotStruct       = errors.New("mapping: entity type is not a struct")
	ErrUnknownField    = errors.New("mapping: unknown field")
	ErrUnexported      = errors.New("mapping: field is not exported")
	ErrEmbeddedPointer = errors.New("mapping: field is promoted through an embedded pointer")
)

// Member is a readable and writable field of an entity struct.
type Member struct {
	Name   string       // field name
	Owner  reflect.Type // entity struct type
	Type   reflect.Type // declared field type
	Index  []int        // index sequence for reflect.Value.FieldByIndex
	Offset uintptr      // byte offset from the start of Owner
}

// Field resolves the field name of entity type T.
func Field[T any](name string) (Member, error) {
	return FieldOf(reflect.TypeFor[T](), name)
}

// MustField is like Field but panics on error.
func MustField[T any](name string) Member {
	m, err := Field[T](name)
	if err != nil {
		panic(err)
	}

	return m
}

// FieldOf resolves a field by name, including fields promoted from embedded structs.
func FieldOf(owner reflect.Type, name string) (Member, error) {
	if owner == nil || owner.Kind() != reflect.Struct {
		return Member{}, fmt.Errorf("%w: %v", ErrNotStruct, owner)
	}

	sf, ok := owner.FieldByName(name)
	if !ok {
		if hint, found := match.Closest(name, exportedFields(owner)); found {
			return Member{}, fmt.Errorf("%w: %s.%s (did you mean %s?)", ErrUnknownField, owner.Name(), name, hint)
		}
		return Member{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, owner.Name(), name)
	}

	if !sf.IsExported() {
		return Member{}, fmt.Errorf("%w: %s.%s", ErrUnexported, owner.Name(), name)
	}

	offset, ok := offsetOf(owner, sf.Index)
	if !ok {
		return Member{}, fmt.Errorf("%w: %s.%s", ErrEmbeddedPointer, owner.Name(), name)
	}

	return Member{
		Name:   sf.Name,
		Owner:  owner,
		Type:   sf.Type,
		Index:  sf.Index,
		Offset: offset,
	}, nil
}

// Value returns the field of entity, which must be an addressable Owner value.
func (m Member) Value(entity reflect.Value) reflect.Value {
	return entity.FieldByIndex(m.Index)
}

func (m Member) String() string {
	if m.Owner == nil {
		return m.Name
	}

	return m.Owner.Name() + "." + m.Name
}

// offsetOf sums field offsets along index. It fails when the path crosses a pointer.
func offsetOf(t reflect.Type, index []int) (uintptr, bool) {
	var offset uintptr
	for i, x := range index {
		f := t.Field(x)
		offset += f.Offset

		if i < len(index)-1 {
			if f.Type.Kind() != reflect.Struct {
				return 0, false
			}
			t = f.Type
		}
	}

	return offset, true
}

func exportedFields(t reflect.Type) []string {
	var names []string
	for _, f := range reflect.VisibleFields(t) {
		if f.IsExported() && !f.Anonymous {
			names = append(names, f.Name)
		}
	}

	return names
}
