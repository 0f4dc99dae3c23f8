package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"

	"cursor-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "cursor-generator/examples/cities"
	Name    string // e.g., "cityCursor"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of the underlying type of a named type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindInterface          // interface type
	TypeKindFunc               // function type
	TypeKindChan               // channel type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindFunc:
		return "func"
	case TypeKindChan:
		return "chan"
	default:
		return common.UnknownStr
	}
}

// CanCarryMethods reports whether values of this kind can be used as a
// cursor receiver. Pointer and interface types cannot declare methods.
func (k TypeKind) CanCarryMethods() bool {
	return k != TypeKindPointer && k != TypeKindInterface && k != TypeKindUnknown
}

// TypeInfo describes a named type in the type graph.
type TypeInfo struct {
	ID         TypeID          // Unique identifier
	Kind       TypeKind        // Kind of the underlying type
	TypeParams []TypeParamInfo // Declared type parameters, in order
	Methods    []MethodInfo    // Declared and promoted methods, sorted by name
	Fields     []string        // Direct field names for struct types
	GoType     types.Type      // The *types.Named
}

// TypeParamInfo describes a declared type parameter.
type TypeParamInfo struct {
	Name       string
	Constraint types.Type
}

// Named returns the underlying *types.Named.
func (t *TypeInfo) Named() *types.Named {
	n, _ := t.GoType.(*types.Named)
	return n
}

// IsGeneric returns true if the type declares type parameters.
func (t *TypeInfo) IsGeneric() bool {
	return len(t.TypeParams) > 0
}

// TypeParamNames returns the names of the declared type parameters.
func (t *TypeInfo) TypeParamNames() []string {
	names := make([]string, len(t.TypeParams))
	for i, tp := range t.TypeParams {
		names[i] = tp.Name
	}

	return names
}

// Method returns the method with the given name, or nil.
func (t *TypeInfo) Method(name string) *MethodInfo {
	for i := range t.Methods {
		if t.Methods[i].Name == name {
			return &t.Methods[i]
		}
	}

	return nil
}

// AuthoredMethod returns the method with the given name unless it was
// emitted by the generator.
func (t *TypeInfo) AuthoredMethod(name string) *MethodInfo {
	m := t.Method(name)
	if m == nil || m.Generated {
		return nil
	}

	return m
}

// MethodNames returns the names of all authored methods.
func (t *TypeInfo) MethodNames() []string {
	var names []string
	for _, m := range t.Methods {
		if !m.Generated {
			names = append(names, m.Name)
		}
	}

	return names
}

// HasField returns true if the struct declares a field with the given name.
func (t *TypeInfo) HasField(name string) bool {
	return slices.Contains(t.Fields, name)
}

// MethodInfo describes a method of a named type.
type MethodInfo struct {
	Name            string           // Method name
	PointerReceiver bool             // Declared on *T
	Promoted        bool             // Promoted from an embedded field
	Generated       bool             // Declared in a file produced by cursor-generator
	RecvTypeParams  []string         // Receiver type parameter names, for generic types
	Signature       *types.Signature // Full signature
	Pos             token.Position   // Declaration position
}

// Params returns the parameter types.
func (m *MethodInfo) Params() []types.Type {
	return tupleTypes(m.Signature.Params())
}

// Results returns the result types.
func (m *MethodInfo) Results() []types.Type {
	return tupleTypes(m.Signature.Results())
}

func tupleTypes(tuple *types.Tuple) []types.Type {
	if tuple == nil {
		return nil
	}

	out := make([]types.Type, tuple.Len())
	for i := range tuple.Len() {
		out[i] = tuple.At(i).Type()
	}

	return out
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInDir returns the loaded package whose files live in dir, or nil.
func (g *TypeGraph) PackageInDir(dir string) *PackageInfo {
	dir = filepath.Clean(dir)
	for _, pkg := range g.Packages {
		if pkg.Dir == dir {
			return pkg
		}
	}

	return nil
}

// EvalType resolves a type expression in the scope of a loaded package.
// The expression may reference the package's own types unqualified and
// any package imported by the first authored file of the package.
func (g *TypeGraph) EvalType(pkgPath, expr string) (types.Type, error) {
	pkg, ok := g.Packages[pkgPath]
	if !ok || pkg.GoPackage == nil {
		return nil, fmt.Errorf("package %s not loaded", pkgPath)
	}

	tv, err := types.Eval(pkg.Fset, pkg.GoPackage, pkg.EvalPos, expr)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate type %q: %w", expr, err)
	}

	if !tv.IsType() {
		return nil, fmt.Errorf("%q is not a type", expr)
	}

	return tv.Type, nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path           string         // Import path
	Name           string         // Package name
	Dir            string         // Directory holding the sources, if known
	Types          []TypeID       // Named types defined in this package
	GeneratedFiles []string       // Files produced by cursor-generator
	GoPackage      *types.Package // Type-checked package
	Fset           *token.FileSet // File set used to load the package
	EvalPos        token.Pos      // Position used to evaluate type expressions
}
