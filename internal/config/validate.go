package config

import (
	"fmt"
	"path/filepath"

	"cursor-generator/cursor"
	"cursor-generator/internal/diagnostic"
)

// Validate checks the structure of a configuration. Whether the named types
// exist is checked later, against the loaded packages.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "config is nil", "", "")
		return res
	}

	if f.Version != DefaultVersion {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("unsupported config version %q", f.Version), "", "")
	}

	if filepath.Base(f.Output) != f.Output || filepath.Ext(f.Output) != ".go" {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("output %q must be a .go file name without directories", f.Output), "", "")
	}

	if len(f.Cursors) == 0 {
		res.AddError(diagnostic.CodeInvalidConfig, "no cursors configured", "", "")
	}

	seen := make(map[string]struct{})

	for i, c := range f.Cursors {
		if c.Type == "" {
			res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("cursor #%d has no type", i+1), "", "")
			continue
		}

		if _, ok := seen[c.Type]; ok {
			res.AddError(diagnostic.CodeDuplicateCursor,
				fmt.Sprintf("cursor %q is configured more than once", c.Type), c.Type, "")

			continue
		}

		seen[c.Type] = struct{}{}

		if _, err := c.RequiredCategory(); err != nil {
			res.AddError(diagnostic.CodeInvalidConfig, err.Error(), c.Type, "",
				categoryNames()...)
		}
	}

	return res
}

func categoryNames() []string {
	var names []string
	for i := range cursor.CategoryTotal {
		cat := cursor.Category(i)
		if cat != cursor.CategoryUnknown {
			names = append(names, cat.String())
		}
	}

	return names
}
