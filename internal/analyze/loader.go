package analyze

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
	dir   string
}

// NewAnalyzer creates a new Analyzer resolving patterns relative to dir
// (the current directory when empty).
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{graph: NewTypeGraph(), dir: dir}
}

// LoadPackages loads the specified packages and adds their struct types to the graph.
// Patterns are standard Go package patterns (e.g., "./store", "flatbind/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.Types)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage records every named struct type of pkg.
func (a *Analyzer) processPackage(pkg *types.Package) {
	a.graph.Packages[pkg.Path()] = pkg

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		info := &TypeInfo{
			ID:    TypeID{PkgPath: pkg.Path(), Name: name},
			Named: named,
		}

		for i := range st.NumFields() {
			info.Fields = append(info.Fields, fieldInfo(st.Field(i)))
		}

		a.graph.Types[info.ID] = info
	}
}

// GetStruct returns the struct type pkgPath.typeName.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("struct type %s not found", id)
	}

	return info, nil
}
