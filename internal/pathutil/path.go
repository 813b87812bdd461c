// Package pathutil provides helpers for slash-separated record paths.
package pathutil

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// IsClean reports whether p is a safe relative record path.
//
// A clean path is non-empty, uses forward slashes only, contains no "." or
// ".." elements, and does not start with a separator. Record paths are stored
// `/`-separated regardless of host OS, so backslashes are never valid.
func IsClean(p string) bool {
	if p == "" || p == "." {
		return false
	}
	if strings.ContainsRune(p, '\\') {
		return false
	}
	return fs.ValidPath(p)
}

// ToHost joins a slash-separated relative path onto a host prefix root,
// converting separators to the host convention. This is the only place
// record paths leave their canonical `/`-separated form.
func ToHost(prefixRoot, rel string) string {
	return filepath.Join(prefixRoot, filepath.FromSlash(rel))
}

// SortUnique returns the sorted, deduplicated copy of paths.
// The input slice is not modified.
func SortUnique(paths []string) []string {
	out := slices.Clone(paths)
	slices.Sort(out)
	return slices.Compact(out)
}
