package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"cursor-generator/internal/logging"
)

// GeneratedMarker is the header line written at the top of generated files.
const GeneratedMarker = "Code generated by cursor-generator. DO NOT EDIT."

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph   *TypeGraph
	dir     string
	overlay map[string][]byte
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDir sets the working directory used to resolve package patterns.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// WithOverlay replaces the contents of the named files while loading.
// Keys are absolute file paths.
func WithOverlay(overlay map[string][]byte) Option {
	return func(a *Analyzer) {
		a.overlay = overlay
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph: NewTypeGraph(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/cities").
//
// Errors reported inside files produced by cursor-generator are tolerated:
// a stale generated file must not prevent its own regeneration.
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     a.dir,
		Overlay: a.overlay,
		Tests:   false,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		generated := generatedFiles(pkg.Fset, pkg.Syntax)
		for _, e := range pkg.Errors {
			if inGeneratedFile(e, generated) {
				logging.Warn().Str("package", pkg.PkgPath).Str("error", e.Msg).
					Msg("ignoring error in generated file")

				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
		}

		dir := ""
		if len(pkg.GoFiles) > 0 {
			dir = filepath.Dir(pkg.GoFiles[0])
		}

		a.processPackage(pkg.Types, pkg.Fset, pkg.Syntax, dir)
	}

	return a.graph, nil
}

// LoadSource type-checks a single Go file held in memory and adds its named
// types to the graph. Imports are resolved with the default importer.
func (a *Analyzer) LoadSource(filename, src string) (*TypeGraph, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	var typeErrs []error
	generated := generatedFiles(fset, []*ast.File{file})
	conf := types.Config{
		Importer: importer.Default(),
		Error: func(err error) {
			var te types.Error
			if errors.As(err, &te) && slices.Contains(generated, te.Fset.Position(te.Pos).Filename) {
				return
			}

			typeErrs = append(typeErrs, err)
		},
	}

	pkg, _ := conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	if len(typeErrs) > 0 {
		return nil, fmt.Errorf("type errors: %w", errors.Join(typeErrs...))
	}

	a.processPackage(pkg, fset, []*ast.File{file}, "")

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts every package-level defined type, exported or not.
func (a *Analyzer) processPackage(pkg *types.Package, fset *token.FileSet, files []*ast.File, dir string) {
	pkgInfo := &PackageInfo{
		Path:           pkg.Path(),
		Name:           pkg.Name(),
		Dir:            dir,
		GeneratedFiles: generatedFiles(fset, files),
		GoPackage:      pkg,
		Fset:           fset,
	}

	for _, f := range files {
		if !IsGeneratedFile(f) {
			pkgInfo.EvalPos = f.Name.Pos()
			break
		}
	}

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

		info := a.analyzeNamedType(named, fset, pkgInfo.GeneratedFiles)
		a.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.graph.Packages[pkg.Path()] = pkgInfo
}

// analyzeNamedType builds the TypeInfo for a defined type.
func (a *Analyzer) analyzeNamedType(named *types.Named, fset *token.FileSet, generated []string) *TypeInfo {
	obj := named.Obj()
	info := &TypeInfo{
		ID: TypeID{
			PkgPath: obj.Pkg().Path(),
			Name:    obj.Name(),
		},
		Kind:   kindOf(named.Underlying()),
		GoType: named,
	}

	if tparams := named.TypeParams(); tparams != nil {
		for i := range tparams.Len() {
			tp := tparams.At(i)
			info.TypeParams = append(info.TypeParams, TypeParamInfo{
				Name:       tp.Obj().Name(),
				Constraint: tp.Constraint(),
			})
		}
	}

	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := range st.NumFields() {
			info.Fields = append(info.Fields, st.Field(i).Name())
		}
	}

	seen := make(map[string]bool)

	for i := range named.NumMethods() {
		fn := named.Method(i)
		info.Methods = append(info.Methods, newMethodInfo(fn, fset, generated, false))
		seen[fn.Name()] = true
	}

	// Promoted methods from embedded fields. Instantiated generic types are
	// not expanded here; their methods are visible only on the origin.
	if !info.IsGeneric() {
		mset := types.NewMethodSet(types.NewPointer(named))
		for i := range mset.Len() {
			sel := mset.At(i)
			fn, ok := sel.Obj().(*types.Func)
			if !ok || seen[fn.Name()] || len(sel.Index()) < 2 {
				continue
			}

			info.Methods = append(info.Methods, newMethodInfo(fn, fset, generated, true))
			seen[fn.Name()] = true
		}
	}

	slices.SortFunc(info.Methods, func(x, y MethodInfo) int {
		return strings.Compare(x.Name, y.Name)
	})

	return info
}

func newMethodInfo(fn *types.Func, fset *token.FileSet, generated []string, promoted bool) MethodInfo {
	sig, _ := fn.Type().(*types.Signature)
	pos := fset.Position(fn.Pos())

	m := MethodInfo{
		Name:      fn.Name(),
		Promoted:  promoted,
		Generated: slices.Contains(generated, pos.Filename),
		Signature: sig,
		Pos:       pos,
	}

	if recv := sig.Recv(); recv != nil {
		_, m.PointerReceiver = recv.Type().(*types.Pointer)
	}

	if rtp := sig.RecvTypeParams(); rtp != nil {
		for i := range rtp.Len() {
			m.RecvTypeParams = append(m.RecvTypeParams, rtp.At(i).Obj().Name())
		}
	}

	return m
}

func kindOf(t types.Type) TypeKind {
	switch t.(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Array:
		return TypeKindArray
	case *types.Map:
		return TypeKindMap
	case *types.Interface:
		return TypeKindInterface
	case *types.Signature:
		return TypeKindFunc
	case *types.Chan:
		return TypeKindChan
	default:
		return TypeKindUnknown
	}
}

// IsGeneratedFile reports whether the file carries the cursor-generator header.
func IsGeneratedFile(f *ast.File) bool {
	for _, cg := range f.Comments {
		if cg.Pos() > f.Package {
			break
		}

		if strings.Contains(cg.Text(), GeneratedMarker) {
			return true
		}
	}

	return false
}

func generatedFiles(fset *token.FileSet, files []*ast.File) []string {
	var out []string
	for _, f := range files {
		if IsGeneratedFile(f) {
			out = append(out, fset.Position(f.Package).Filename)
		}
	}

	return out
}

// inGeneratedFile reports whether e points into a generated file. Type errors
// carry the position in Pos. Build errors from go list arrive with Pos "-" and
// a message of the form "# pkg\n./file.go:L:C: msg"; those are matched by
// base name and dropped only when every reported line is in a generated file.
func inGeneratedFile(e packages.Error, generated []string) bool {
	if e.Pos == "-" || (e.Kind == packages.ListError && e.Pos == "") {
		return buildErrorInGeneratedFile(e.Msg, generated)
	}

	if e.Pos == "" {
		return false
	}

	for _, file := range generated {
		if strings.HasPrefix(e.Pos, file+":") {
			return true
		}
	}

	return false
}

func buildErrorInGeneratedFile(msg string, generated []string) bool {
	bases := make([]string, 0, len(generated))
	for _, file := range generated {
		bases = append(bases, filepath.Base(file))
	}

	found := false
	for _, line := range strings.Split(msg, "\n") {
		switch {
		case line == "", strings.HasPrefix(line, "#"), strings.HasPrefix(line, "\t"), strings.HasPrefix(line, " "):
			continue
		case strings.Contains(line, "too many errors"):
			continue
		}

		file, _, ok := strings.Cut(line, ":")
		if !ok || !strings.HasSuffix(file, ".go") || !slices.Contains(bases, filepath.Base(file)) {
			return false
		}

		found = true
	}

	return found
}

// GetType returns the TypeInfo for a named type.
func (a *Analyzer) GetType(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	return info, nil
}

// EvalType resolves a type expression in the scope of a loaded package.
func (a *Analyzer) EvalType(pkgPath, expr string) (types.Type, error) {
	return a.graph.EvalType(pkgPath, expr)
}
