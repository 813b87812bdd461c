// Package pkgname provides the package name value type used by prefix records.
//
// A PackageName keeps both the name as it was written ("Requests") and its
// normalized lowercase form ("requests"). Names are matched and sorted by the
// normalized form; the source form is preserved for display and serialization.
package pkgname

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is returned when a package name contains characters outside
// the allowed set [A-Za-z0-9._-] or is empty.
var ErrInvalidName = errors.New("pkgname: invalid package name")

// PackageName is an immutable, validated package name.
// The zero value represents a missing name.
type PackageName struct {
	source     string
	normalized string
}

// Parse validates s and returns it as a PackageName.
func Parse(s string) (PackageName, error) {
	if s == "" {
		return PackageName{}, fmt.Errorf("%w: empty", ErrInvalidName)
	}
	for _, r := range s {
		if !isNameRune(r) {
			return PackageName{}, fmt.Errorf("%w: %q", ErrInvalidName, s)
		}
	}
	return PackageName{source: s, normalized: strings.ToLower(s)}, nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.':
		return true
	}
	return false
}

// Source returns the name exactly as it was written.
func (n PackageName) Source() string { return n.source }

// Normalized returns the lowercase form used for matching and sorting.
func (n PackageName) Normalized() string { return n.normalized }

// IsZero reports whether the name is missing.
func (n PackageName) IsZero() bool { return n.source == "" }

// String returns the normalized form.
func (n PackageName) String() string { return n.normalized }

// MarshalJSON writes the source form as a JSON string.
func (n PackageName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.source)
}

// UnmarshalJSON reads a JSON string and validates it as a package name.
// An empty string yields the zero value so callers can report the field
// as missing rather than malformed.
func (n *PackageName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*n = PackageName{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
