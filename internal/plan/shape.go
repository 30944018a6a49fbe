package plan

import (
	"go/types"
)

// shapeOf classifies a field type. valueType is only meaningful for the
// direct and nullable shapes.
func shapeOf(t types.Type) (shape Shape, valueType string, usesTime bool) {
	if name, isTime, ok := exactName(t); ok {
		return ShapeDirect, name, isTime
	}

	if p, ok := t.(*types.Pointer); ok {
		if name, isTime, ok := exactName(p.Elem()); ok {
			return ShapeNullable, name, isTime
		}
	}

	return ShapeGeneric, "", false
}

// exactName returns the source name of t when it is one of the predeclared
// numeric, bool or string types, time.Time or time.Duration.
func exactName(t types.Type) (name string, isTime, ok bool) {
	switch tt := t.(type) {
	case *types.Basic:
		switch tt.Kind() {
		case types.Bool, types.String,
			types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
			types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64,
			types.Float32, types.Float64:
			return tt.Name(), false, true
		}
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" &&
			(obj.Name() == "Time" || obj.Name() == "Duration") {
			return "time." + obj.Name(), true, true
		}
	}

	return "", false, false
}
