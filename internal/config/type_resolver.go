package config

import (
	"slices"

	"cursor-generator/internal/analyze"
)

// ResolveCursorType resolves a configured type name against the types of a
// loaded package. Names are unqualified: cursors are always generated into
// the package that declares them.
func ResolveCursorType(name, pkgPath string, graph *analyze.TypeGraph) *analyze.TypeInfo {
	if graph == nil || name == "" {
		return nil
	}

	return graph.GetType(analyze.TypeID{PkgPath: pkgPath, Name: name})
}

// PackageTypeNames returns the sorted names of all types declared in a
// package, for suggestions.
func PackageTypeNames(pkgPath string, graph *analyze.TypeGraph) []string {
	if graph == nil {
		return nil
	}

	pkg, ok := graph.Packages[pkgPath]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		names = append(names, id.Name)
	}

	slices.Sort(names)

	return names
}
