package common

import (
	"path"
	"strings"
)

// UnknownStr is what String methods of enums return for unknown values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	alias := strings.ToLower(path.Base(path.Clean(pkgPath)))

	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}

		return r
	}, alias)
}
