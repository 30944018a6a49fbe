package gen

import (
	"fmt"
	"strings"
	"text/template"

	"flatbind/internal/common"
	"flatbind/internal/plan"
)

// templateData holds all data needed for the binding template.
type templateData struct {
	PackageName      string
	Filename         string
	Source           string
	ImportGroups     [][]importSpec
	GenerateComments bool
	Entities         []entityData
}

type importSpec struct {
	Alias string
	Path  string
}

type entityData struct {
	TypeName string
	TypeRef  string
	Populate string
	Extract  string
	Columns  string
	Bound    []columnData
}

type columnData struct {
	Comment  string
	Store    string
	Retrieve string
}

func (g *Generator) buildTemplateData(p *plan.Plan) *templateData {
	alias := g.entityAlias(p)

	data := &templateData{
		PackageName:      g.config.PackageName,
		Filename:         g.filename(p),
		Source:           p.PackagePath,
		ImportGroups:     g.imports(p, alias),
		GenerateComments: g.config.GenerateComments,
	}

	for _, e := range p.Entities {
		ed := entityData{
			TypeName: e.Type.ID.Name,
			TypeRef:  common.Qualify(alias, e.Type.ID.Name),
			Populate: e.Populate,
			Extract:  e.Extract,
			Columns:  columnList(e.Columns),
		}

		for _, c := range e.Bound() {
			ed.Bound = append(ed.Bound, columnData{
				Comment:  fmt.Sprintf("%d: %s", c.Slot, c.Name),
				Store:    storeStmt(c),
				Retrieve: retrieveExpr(c),
			})
		}

		data.Entities = append(data.Entities, ed)
	}

	return data
}

func columnList(columns []plan.ColumnPlan) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		switch {
		case c.Slot < 0 && c.Name == "":
			names[i] = "-"
		case c.Slot < 0:
			names[i] = c.Name + " (ignored)"
		default:
			names[i] = c.Name
		}
	}

	return strings.Join(names, ", ")
}

// storeStmt returns the populate statement of one bound column.
func storeStmt(c plan.ColumnPlan) string {
	value := fmt.Sprintf("values[%d]", c.Slot)
	fallback := func(v string) string {
		return fmt.Sprintf("if err := binder.Assign(&e.%s, %q, %q, %s); err != nil {\n\treturn err\n}",
			c.Field, c.Name, c.Field, v)
	}

	switch c.Shape {
	case plan.ShapeDirect:
		return fmt.Sprintf("if v, ok := %s.(%s); ok {\n\te.%s = v\n} else %s",
			value, c.ValueType, c.Field, fallback(value))
	case plan.ShapeNullable:
		return fmt.Sprintf("switch v := %s.(type) {\ncase nil:\n\te.%s = nil\ncase %s:\n\te.%s = &v\ndefault:\n%s\n}",
			value, c.Field, c.ValueType, c.Field, fallback("v"))
	default:
		return fallback(value)
	}
}

// retrieveExpr returns the extract expression of one bound column.
func retrieveExpr(c plan.ColumnPlan) string {
	switch c.Shape {
	case plan.ShapeDirect:
		return "e." + c.Field
	case plan.ShapeNullable:
		return "binder.Unwrap(e." + c.Field + ")"
	default:
		return "binder.ExtractValue(&e." + c.Field + ")"
	}
}

var bindingTemplate = template.Must(template.New("binding").Parse(`// Code generated by flatbind-gen from {{.Source}}. DO NOT EDIT.

package {{.PackageName}}
{{if .ImportGroups}}
import (
{{- range $i, $group := .ImportGroups}}
{{- if $i}}
{{end}}
{{- range $group}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
{{- end}}
)
{{end}}
{{- range .Entities}}
{{if $.GenerateComments}}
// {{.Populate}} stores values into e. Columns: {{.Columns}}.
{{- end}}
func {{.Populate}}(e *{{.TypeRef}}, values []any) error {
{{- range .Bound}}
	{{if $.GenerateComments}}// {{.Comment}}
	{{end}}{{.Store}}
{{- end}}

	return nil
}
{{if $.GenerateComments}}
// {{.Extract}} returns the bound fields of e in column order.
{{- end}}
func {{.Extract}}(e *{{.TypeRef}}) []any {
{{- if .Bound}}
	return []any{
{{- range .Bound}}
		{{.Retrieve}},
{{- end}}
	}
{{- else}}
	return []any{}
{{- end}}
}
{{end}}`))
