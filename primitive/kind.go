package primitive

import (
	"math"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the value types a column can carry.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named integer, boolean or string type

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var exactTypes = map[reflect.Type]KindEnum{
	reflect.TypeOf(int(0)):           KindInt,
	reflect.TypeOf(int8(0)):          KindInt8,
	reflect.TypeOf(int16(0)):         KindInt16,
	reflect.TypeOf(int32(0)):         KindInt32,
	reflect.TypeOf(int64(0)):         KindInt64,
	reflect.TypeOf(uint(0)):          KindUint,
	reflect.TypeOf(uint8(0)):         KindUint8,
	reflect.TypeOf(uint16(0)):        KindUint16,
	reflect.TypeOf(uint32(0)):        KindUint32,
	reflect.TypeOf(uint64(0)):        KindUint64,
	reflect.TypeOf(float32(0)):       KindFloat32,
	reflect.TypeOf(float64(0)):       KindFloat64,
	reflect.TypeOf(false):            KindBool,
	reflect.TypeOf(""):               KindString,
	reflect.TypeOf(time.Time{}):      KindTime,
	reflect.TypeOf(time.Duration(0)): KindDuration,
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsExact reports whether the kind denotes one predeclared type (or time.Time,
// time.Duration) rather than a family of named types.
func (k KindEnum) IsExact() bool {
	return k > 0 && k < KindPrimitiveEnum
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

// FromReflectType returns the kind of rtype, or zero when rtype is not a
// column value type.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if kind, ok := exactTypes[rtype]; ok {
		return kind
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Bool, reflect.String:
		return KindPrimitiveEnum
	}
}

// IsExact reports whether rtype is exactly one of the predeclared column value types.
func IsExact(rtype reflect.Type) bool {
	return FromReflectType(rtype).IsExact()
}
