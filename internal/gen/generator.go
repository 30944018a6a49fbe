package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"sort"

	"flatbind/internal/common"
	"flatbind/internal/plan"
)

// BinderImportPath is the import path of the runtime rules used by the
// generated fallbacks.
const BinderImportPath = "flatbind/binder"

var ErrPlanHasErrors = errors.New("plan has errors")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// PackagePath is the import path of the generated package. Entities
	// living in the same package are referenced without a qualifier.
	PackagePath string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "bindings",
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator generates Go code from resolved plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "store_binding.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces one file holding the functions of every entity in p.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrPlanHasErrors, p.Diagnostics.Err())
	}

	data := g.buildTemplateData(p)

	var buf bytes.Buffer
	if err := bindingTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) filename(p *plan.Plan) string {
	if p.Output != "" {
		return p.Output
	}

	return common.PkgAlias(p.PackagePath) + "_binding.go"
}

// entityAlias is the qualifier for entity types, empty when the code is
// generated into the entity package itself.
func (g *Generator) entityAlias(p *plan.Plan) string {
	if g.config.PackagePath != "" && g.config.PackagePath == p.PackagePath {
		return ""
	}

	if p.PackageName != "" {
		return p.PackageName
	}

	return common.PkgAlias(p.PackagePath)
}

// imports returns the import groups of the generated file: the standard
// library first, then module packages.
func (g *Generator) imports(p *plan.Plan, alias string) [][]importSpec {
	var (
		usesBinder bool
		usesTime   bool
	)

	for _, e := range p.Entities {
		if len(e.Bound()) > 0 {
			usesBinder = true
		}

		usesTime = usesTime || e.UsesTime()
	}

	var std, specs []importSpec
	if usesTime {
		std = append(std, importSpec{Path: "time"})
	}

	if usesBinder {
		specs = append(specs, importSpec{Path: BinderImportPath})
	}

	if alias != "" && len(p.Entities) > 0 {
		spec := importSpec{Path: p.PackagePath}
		if alias != common.PkgAlias(p.PackagePath) {
			spec.Alias = alias
		}

		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	var groups [][]importSpec
	for _, group := range [][]importSpec{std, specs} {
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}

	return groups
}
