package common

import (
	"path"
	"strings"
)

// ImportName returns the name a reader assumes for an import path: its last
// element, skipping a trailing major version ("/v2") and dropping a gopkg.in
// style version suffix ("yaml.v3"). Returns an empty string for an empty path.
func ImportName(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	name := path.Base(pkgPath)
	if isMajorVersion(name) {
		if dir := path.Dir(pkgPath); dir != "." {
			name = path.Base(dir)
		}
	}

	if i := strings.LastIndex(name, ".v"); i > 0 && isMajorVersion(name[i+1:]) {
		name = name[:i]
	}

	return name
}

// isMajorVersion reports whether s looks like "v2", "v10", ...
func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
