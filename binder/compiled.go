package binder

import (
	"reflect"
	"time"
	"unsafe"

	"flatbind/mapping"
	"flatbind/primitive"
)

// accessor reads and writes one member relative to the entity base address.
type accessor struct {
	set func(base unsafe.Pointer, v any) error
	get func(base unsafe.Pointer) any
}

// CompilePopulate builds a populate function specialised for the mappings of T.
func CompilePopulate[T any](mappings []mapping.PropertyMapping) (PopulateFunc[T], error) {
	accessors, err := compile[T](mappings)
	if err != nil {
		return nil, err
	}

	return func(entity *T, values []any) error {
		base := unsafe.Pointer(entity)
		for k, a := range accessors {
			if err := a.set(base, values[k]); err != nil {
				return err
			}
		}

		return nil
	}, nil
}

// CompileExtract builds an extract function specialised for the mappings of T.
func CompileExtract[T any](mappings []mapping.PropertyMapping) (ExtractFunc[T], error) {
	accessors, err := compile[T](mappings)
	if err != nil {
		return nil, err
	}

	return func(entity *T) []any {
		base := unsafe.Pointer(entity)
		values := make([]any, len(accessors))
		for k, a := range accessors {
			values[k] = a.get(base)
		}

		return values
	}, nil
}

func compile[T any](mappings []mapping.PropertyMapping) ([]accessor, error) {
	bound, err := bind[T](mappings)
	if err != nil {
		return nil, err
	}

	accessors := make([]accessor, len(bound))
	for k, b := range bound {
		accessors[k] = accessorFor(b)
	}

	return accessors, nil
}

// accessorFor picks a typed accessor for exact primitive members and their
// pointers, and a reflect based one for everything else.
func accessorFor(b boundMember) accessor {
	t := b.member.Type
	if t.Kind() == reflect.Pointer && primitive.IsExact(t.Elem()) {
		return nullableFor(b, primitive.FromReflectType(t.Elem()))
	}

	switch primitive.FromReflectType(t) {
	case primitive.KindInt:
		return scalar[int](b)
	case primitive.KindInt8:
		return scalar[int8](b)
	case primitive.KindInt16:
		return scalar[int16](b)
	case primitive.KindInt32:
		return scalar[int32](b)
	case primitive.KindInt64:
		return scalar[int64](b)
	case primitive.KindUint:
		return scalar[uint](b)
	case primitive.KindUint8:
		return scalar[uint8](b)
	case primitive.KindUint16:
		return scalar[uint16](b)
	case primitive.KindUint32:
		return scalar[uint32](b)
	case primitive.KindUint64:
		return scalar[uint64](b)
	case primitive.KindFloat32:
		return scalar[float32](b)
	case primitive.KindFloat64:
		return scalar[float64](b)
	case primitive.KindBool:
		return scalar[bool](b)
	case primitive.KindString:
		return scalar[string](b)
	case primitive.KindTime:
		return scalar[time.Time](b)
	case primitive.KindDuration:
		return scalar[time.Duration](b)
	default:
		return generic(b)
	}
}

func nullableFor(b boundMember, elem primitive.KindEnum) accessor {
	switch elem {
	case primitive.KindInt:
		return nullable[int](b)
	case primitive.KindInt8:
		return nullable[int8](b)
	case primitive.KindInt16:
		return nullable[int16](b)
	case primitive.KindInt32:
		return nullable[int32](b)
	case primitive.KindInt64:
		return nullable[int64](b)
	case primitive.KindUint:
		return nullable[uint](b)
	case primitive.KindUint8:
		return nullable[uint8](b)
	case primitive.KindUint16:
		return nullable[uint16](b)
	case primitive.KindUint32:
		return nullable[uint32](b)
	case primitive.KindUint64:
		return nullable[uint64](b)
	case primitive.KindFloat32:
		return nullable[float32](b)
	case primitive.KindFloat64:
		return nullable[float64](b)
	case primitive.KindBool:
		return nullable[bool](b)
	case primitive.KindString:
		return nullable[string](b)
	case primitive.KindTime:
		return nullable[time.Time](b)
	case primitive.KindDuration:
		return nullable[time.Duration](b)
	default:
		return generic(b)
	}
}

// scalar accesses a member of exactly type F. Values of any other dynamic type
// go through the generic rules, which produce the same outcome as the
// reflective strategy.
func scalar[F any](b boundMember) accessor {
	offset := b.member.Offset
	slow := generic(b).set

	return accessor{
		set: func(base unsafe.Pointer, v any) error {
			if x, ok := v.(F); ok {
				*(*F)(unsafe.Add(base, offset)) = x
				return nil
			}

			return slow(base, v)
		},
		get: func(base unsafe.Pointer) any {
			return *(*F)(unsafe.Add(base, offset))
		},
	}
}

// nullable accesses a member of type *F.
func nullable[F any](b boundMember) accessor {
	offset := b.member.Offset
	slow := generic(b).set

	return accessor{
		set: func(base unsafe.Pointer, v any) error {
			switch x := v.(type) {
			case nil:
				*(**F)(unsafe.Add(base, offset)) = nil
			case F:
				*(**F)(unsafe.Add(base, offset)) = &x
			default:
				return slow(base, v)
			}

			return nil
		},
		get: func(base unsafe.Pointer) any {
			return Unwrap(*(**F)(unsafe.Add(base, offset)))
		},
	}
}

func generic(b boundMember) accessor {
	t := b.member.Type
	offset := b.member.Offset

	return accessor{
		set: func(base unsafe.Pointer, v any) error {
			field := reflect.NewAt(t, unsafe.Add(base, offset)).Elem()
			if !assign(field, v) {
				return mismatch(b.column, b.member.Name, t, v)
			}

			return nil
		},
		get: func(base unsafe.Pointer) any {
			return extract(reflect.NewAt(t, unsafe.Add(base, offset)).Elem())
		},
	}
}
