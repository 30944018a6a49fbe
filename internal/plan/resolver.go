package plan

import (
	"errors"
	"fmt"
	"sort"

	"flatbind/internal/analyze"
	"flatbind/internal/diagnostic"
	"flatbind/internal/layout"
	"flatbind/internal/match"
)

// Resolver resolves layouts against a type graph.
type Resolver struct {
	graph *analyze.TypeGraph
}

// NewResolver creates a new resolver.
func NewResolver(graph *analyze.TypeGraph) *Resolver {
	return &Resolver{graph: graph}
}

// Resolve builds the plan for f. The plan is returned even when it carries
// errors, so callers can report all of them.
func (r *Resolver) Resolve(f *layout.File) *Plan {
	p := &Plan{}
	p.Diagnostics.Merge(layout.Validate(f))

	if f == nil {
		return p
	}

	p.PackagePath = f.Package
	p.Output = f.Output

	pkg, ok := r.graph.Packages[f.Package]
	if !ok {
		if f.Package != "" {
			p.Diagnostics.AddError("package_not_loaded",
				fmt.Sprintf("package %s was not loaded", f.Package), "", "")
		}

		return p
	}

	p.PackageName = pkg.Name()

	for _, e := range f.Entities {
		if e.Type == "" {
			continue
		}

		if ep, ok := r.resolveEntity(f.Package, e, &p.Diagnostics); ok {
			p.Entities = append(p.Entities, ep)
		}
	}

	return p
}

func (r *Resolver) resolveEntity(pkgPath string, e layout.Entity, diags *diagnostic.Diagnostics) (EntityPlan, bool) {
	info := r.graph.GetType(analyze.TypeID{PkgPath: pkgPath, Name: e.Type})
	if info == nil {
		msg := fmt.Sprintf("struct type %s not found in %s", e.Type, pkgPath)
		if hint, ok := match.Closest(e.Type, r.structNames(pkgPath)); ok {
			msg += fmt.Sprintf(" (did you mean %s?)", hint)
		}

		diags.AddError("unknown_type", msg, e.Type, "")

		return EntityPlan{}, false
	}

	ep := EntityPlan{
		Type:     info,
		Populate: e.PopulateFunc(),
		Extract:  e.ExtractFunc(),
		Columns:  make([]ColumnPlan, 0, len(e.Columns)),
	}

	ok := true
	slot := 0

	for _, c := range e.Columns {
		if c.Ignore {
			ep.Columns = append(ep.Columns, ColumnPlan{Name: c.ColumnName(), Slot: -1})
			continue
		}

		cp, err := resolveColumn(info, c)
		if err != nil {
			diags.AddError(columnErrorCode(err), err.Error(), e.Type, c.ColumnName())
			ok = false

			continue
		}

		cp.Slot = slot
		slot++

		ep.Columns = append(ep.Columns, cp)
	}

	return ep, ok
}

var (
	errUnexported = errors.New("field is not exported")
)

func resolveColumn(info *analyze.TypeInfo, c layout.Column) (ColumnPlan, error) {
	f, err := info.FieldByName(c.Field)
	if err != nil {
		if errors.Is(err, analyze.ErrNoSuchField) {
			if hint, ok := match.Closest(c.Field, info.ExportedFieldNames()); ok {
				return ColumnPlan{}, fmt.Errorf("%w: %s (did you mean %s?)", err, c.Field, hint)
			}
		}

		return ColumnPlan{}, fmt.Errorf("%w: %s", err, c.Field)
	}

	if !f.Exported {
		return ColumnPlan{}, fmt.Errorf("%w: %s", errUnexported, c.Field)
	}

	shape, valueType, usesTime := shapeOf(f.Type)

	return ColumnPlan{
		Name:      c.ColumnName(),
		Field:     c.Field,
		Shape:     shape,
		ValueType: valueType,
		UsesTime:  usesTime,
	}, nil
}

func columnErrorCode(err error) string {
	switch {
	case errors.Is(err, analyze.ErrNoSuchField):
		return "unknown_field"
	case errors.Is(err, analyze.ErrEmbeddedPointer):
		return "embedded_pointer"
	case errors.Is(err, errUnexported):
		return "unexported_field"
	default:
		return "invalid_field"
	}
}

func (r *Resolver) structNames(pkgPath string) []string {
	var names []string
	for id := range r.graph.Types {
		if id.PkgPath == pkgPath {
			names = append(names, id.Name)
		}
	}

	sort.Strings(names)

	return names
}
