// Package version provides the version value type used by prefix records.
//
// VersionWithSource preserves the exact textual spelling a version was parsed
// from ("1.0", "1.00", "1.0.post1") so records round-trip byte-for-byte, while
// still validating the spelling on construction.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidVersion is returned when a version string is empty or contains
// characters outside the allowed set [A-Za-z0-9._+!-].
var ErrInvalidVersion = errors.New("version: invalid version")

// VersionWithSource is an immutable, validated package version that remembers
// its original spelling. The zero value represents a missing version.
type VersionWithSource struct {
	source string
}

// Parse validates s and returns it as a VersionWithSource.
func Parse(s string) (VersionWithSource, error) {
	if s == "" {
		return VersionWithSource{}, fmt.Errorf("%w: empty", ErrInvalidVersion)
	}
	if !isAlnum(rune(s[0])) {
		return VersionWithSource{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	for _, r := range s {
		if !isVersionRune(r) {
			return VersionWithSource{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
	}
	return VersionWithSource{source: s}, nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isVersionRune(r rune) bool {
	return isAlnum(r) || r == '.' || r == '_' || r == '-' || r == '+' || r == '!'
}

// String returns the original spelling.
func (v VersionWithSource) String() string { return v.source }

// IsZero reports whether the version is missing.
func (v VersionWithSource) IsZero() bool { return v.source == "" }

// MarshalJSON writes the original spelling as a JSON string.
func (v VersionWithSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.source)
}

// UnmarshalJSON reads a JSON string and validates it as a version.
// An empty string yields the zero value so callers can report the field
// as missing rather than malformed.
func (v *VersionWithSource) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*v = VersionWithSource{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
