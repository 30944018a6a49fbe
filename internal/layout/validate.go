package layout

import (
	"fmt"

	"flatbind/internal/diagnostic"
)

// Validate checks the structure of f. Field names are checked later, against
// the loaded entity types.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("layout_is_nil", "layout file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported layout version %q", f.Version), "", "")
	}

	if f.Package == "" {
		res.AddError("missing_package", "package is required", "", "")
	}

	if len(f.Entities) == 0 {
		res.AddWarning("no_entities", "layout declares no entities", "", "")
	}

	seenTypes := map[string]struct{}{}
	seenFuncs := map[string]struct{}{}

	for i := range f.Entities {
		e := &f.Entities[i]
		if e.Type == "" {
			res.AddError("missing_type", fmt.Sprintf("entity #%d has no type", i+1), "", "")
			continue
		}

		if _, ok := seenTypes[e.Type]; ok {
			res.AddError("duplicate_entity", fmt.Sprintf("entity %s is declared twice", e.Type), e.Type, "")
		}
		seenTypes[e.Type] = struct{}{}

		for _, fn := range []string{e.PopulateFunc(), e.ExtractFunc()} {
			if _, ok := seenFuncs[fn]; ok {
				res.AddError("duplicate_function", fmt.Sprintf("function name %s is used twice", fn), e.Type, "")
			}
			seenFuncs[fn] = struct{}{}
		}

		validateColumns(e, res)
	}

	return res
}

func validateColumns(e *Entity, res *diagnostic.Diagnostics) {
	seenNames := map[string]struct{}{}
	seenFields := map[string]struct{}{}

	for i, c := range e.Columns {
		label := c.ColumnName()
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}

		switch {
		case c.Ignore && c.Field != "":
			res.AddError("ignored_with_field", "an ignored column cannot name a field", e.Type, label)
		case !c.Ignore && c.Field == "":
			res.AddError("missing_field", "column needs a field or ignore: true", e.Type, label)
		}

		if name := c.ColumnName(); name != "" {
			if _, ok := seenNames[name]; ok {
				res.AddError("duplicate_column", "column name is used twice", e.Type, name)
			}
			seenNames[name] = struct{}{}
		}

		if c.Field != "" {
			if _, ok := seenFields[c.Field]; ok {
				res.AddWarning("field_bound_twice", fmt.Sprintf("field %s is bound to more than one column", c.Field), e.Type, label)
			}
			seenFields[c.Field] = struct{}{}
		}
	}
}
