package binder

import (
	"reflect"

	"flatbind/primitive"
)

// Assign stores v into the variable dst points to, following the package
// assignment rules. column and member only label a mismatch error.
// Generated binding code falls back to Assign for values it does not expect.
func Assign(dst any, column, member string, v any) error {
	target := reflect.ValueOf(dst).Elem()
	if !assign(target, v) {
		return mismatch(column, member, target.Type(), v)
	}

	return nil
}

// ExtractValue returns the value of the variable ptr points to, unwrapping
// pointers to primitive values.
func ExtractValue(ptr any) any {
	return extract(reflect.ValueOf(ptr).Elem())
}

// Unwrap returns nil for a nil pointer and the pointed-to value otherwise.
func Unwrap[F any](p *F) any {
	if p == nil {
		return nil
	}

	return *p
}

func assign(dst reflect.Value, v any) bool {
	if v == nil {
		if !nillable(dst.Kind()) {
			return false
		}

		dst.SetZero()
		return true
	}

	vt := reflect.TypeOf(v)
	dt := dst.Type()

	switch {
	case vt.AssignableTo(dt):
		dst.Set(reflect.ValueOf(v))
		return true
	case dt.Kind() == reflect.Pointer && vt.AssignableTo(dt.Elem()):
		p := reflect.New(dt.Elem())
		p.Elem().Set(reflect.ValueOf(v))
		dst.Set(p)
		return true
	default:
		return false
	}
}

func extract(field reflect.Value) any {
	if unwraps(field.Type()) {
		if field.IsNil() {
			return nil
		}

		return field.Elem().Interface()
	}

	return field.Interface()
}

// unwraps reports whether extract dereferences members of type t.
func unwraps(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && primitive.FromReflectType(t.Elem()) != 0
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func mismatch(column, member string, want reflect.Type, v any) error {
	return &TypeMismatchError{
		Column: column,
		Member: member,
		Want:   want,
		Got:    reflect.TypeOf(v),
	}
}
