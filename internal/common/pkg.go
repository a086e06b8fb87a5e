package common

import (
	"path"
	"strings"
)

// PkgAlias guesses the identifier a package is referred to by from its import
// path. Major-version elements are skipped: "github.com/jackc/pgx/v5" gives
// "pgx" and "gopkg.in/yaml.v3" gives "yaml". It returns "" for "".
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	if name, ver, ok := strings.Cut(base, "."); ok && isMajorVersion(ver) {
		base = name
	}

	return base
}

func isMajorVersion(s string) bool {
	digits, ok := strings.CutPrefix(s, "v")
	if !ok || digits == "" {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
