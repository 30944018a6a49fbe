package analyze

import (
	"errors"
	"go/types"
)

var (
	ErrNoSuchField     = errors.New("no such field")
	ErrEmbeddedPointer = errors.New("field is promoted through an embedded pointer")
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "flatbind/store"
	Name    string // e.g., "Shipment"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeInfo describes a named struct type.
type TypeInfo struct {
	ID     TypeID
	Named  *types.Named
	Fields []FieldInfo
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string
	Exported bool
	Embedded bool
	Type     types.Type
}

// FieldByName finds a field declared on t or promoted from an embedded struct
// value. Promotion through an embedded pointer is reported as an error, since
// reaching such a field may dereference nil.
func (t *TypeInfo) FieldByName(name string) (FieldInfo, error) {
	st, ok := t.Named.Underlying().(*types.Struct)
	if !ok {
		return FieldInfo{}, ErrNoSuchField
	}

	return lookupField(st, name, map[*types.Struct]bool{})
}

func lookupField(st *types.Struct, name string, seen map[*types.Struct]bool) (FieldInfo, error) {
	if seen[st] {
		return FieldInfo{}, ErrNoSuchField
	}
	seen[st] = true

	for i := range st.NumFields() {
		if f := st.Field(i); f.Name() == name {
			return fieldInfo(f), nil
		}
	}

	for i := range st.NumFields() {
		f := st.Field(i)
		if !f.Embedded() {
			continue
		}

		typ, viaPointer := f.Type(), false
		if p, ok := typ.(*types.Pointer); ok {
			typ, viaPointer = p.Elem(), true
		}

		inner, ok := typ.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		found, err := lookupField(inner, name, seen)
		if err != nil {
			continue
		}

		if viaPointer {
			return FieldInfo{}, ErrEmbeddedPointer
		}

		return found, nil
	}

	return FieldInfo{}, ErrNoSuchField
}

func fieldInfo(f *types.Var) FieldInfo {
	return FieldInfo{
		Name:     f.Name(),
		Exported: f.Exported(),
		Embedded: f.Embedded(),
		Type:     f.Type(),
	}
}

// ExportedFieldNames lists the exported fields declared on t and promoted
// through embedded structs, for suggestions.
func (t *TypeInfo) ExportedFieldNames() []string {
	var names []string
	for _, f := range t.Fields {
		if f.Exported && !f.Embedded {
			names = append(names, f.Name)
		}
	}

	return names
}

// TypeGraph holds the struct types of the loaded packages.
type TypeGraph struct {
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their go/types package.
	Packages map[string]*types.Package
}

func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*types.Package),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}
