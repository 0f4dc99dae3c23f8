package gen

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"cursor-generator/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// typeFormatter renders go/types types as source text inside the generated
// package and records the imports the rendered text needs.
type typeFormatter struct {
	pkgPath  string
	reserved map[string]bool   // package scope names an import must not shadow
	imports  map[string]string // path -> local name
	used     map[string]string // local name -> path
}

func newTypeFormatter(pkgPath string, reserved []string) *typeFormatter {
	f := &typeFormatter{
		pkgPath:  pkgPath,
		reserved: make(map[string]bool, len(reserved)),
		imports:  make(map[string]string),
		used:     make(map[string]string),
	}

	for _, name := range reserved {
		f.reserved[name] = true
	}

	return f
}

// Type returns the source text of t.
func (f *typeFormatter) Type(t types.Type) string {
	return types.TypeString(t, f.qualifier)
}

func (f *typeFormatter) qualifier(pkg *types.Package) string {
	if pkg.Path() == f.pkgPath {
		return ""
	}

	return f.Import(pkg.Path(), pkg.Name())
}

// Import records an import of path and returns the local name to use.
// The package name is used unless it collides with another import or a
// package scope name, in which case a numbered alias is chosen.
func (f *typeFormatter) Import(path, name string) string {
	if local, ok := f.imports[path]; ok {
		return local
	}

	local := name
	for i := 2; f.taken(local); i++ {
		local = fmt.Sprintf("%s%d", name, i)
	}

	f.imports[path] = local
	f.used[local] = path

	return local
}

func (f *typeFormatter) taken(name string) bool {
	_, ok := f.used[name]
	return ok || f.reserved[name]
}

// Imports returns the recorded imports sorted by path. The alias is only
// set when the local name differs from the name the path suggests.
func (f *typeFormatter) Imports() []importSpec {
	specs := make([]importSpec, 0, len(f.imports))
	for path, local := range f.imports {
		spec := importSpec{Path: path}
		if local != common.ImportName(path) {
			spec.Alias = local
		}

		specs = append(specs, spec)
	}

	slices.SortFunc(specs, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return specs
}
