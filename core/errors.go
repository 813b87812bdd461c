package prefixmeta

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing prefix record documents.
var (
	// ErrMalformed is returned when a document is not well-formed: truncated
	// input, a non-object top level, or a field of the wrong type.
	ErrMalformed = errors.New("prefixmeta: malformed document")

	// ErrMissingField is returned when a required field is absent or empty.
	ErrMissingField = errors.New("prefixmeta: missing required field")

	// ErrDuplicatePath is returned when two path entries share a relative path.
	ErrDuplicatePath = errors.New("prefixmeta: duplicate path")

	// ErrUnsupportedVersion is returned when paths_version is newer than this
	// implementation supports.
	ErrUnsupportedVersion = errors.New("prefixmeta: unsupported paths version")

	// ErrMalformedDigest is returned when a hash field is not a valid digest.
	ErrMalformedDigest = errors.New("prefixmeta: malformed digest")
)

// Sentinel errors for record validation.
var (
	// ErrUnsafePath is returned when a path entry is absolute, escapes the
	// prefix root, or is otherwise not a clean relative path.
	ErrUnsafePath = errors.New("prefixmeta: unsafe path")
)

// ValidationError describes why a record failed validation.
// It unwraps to the sentinel error for the failure kind.
type ValidationError struct {
	// Path is the offending relative path, when the failure concerns one.
	Path string

	// Reason is a short human-readable description of the failure.
	Reason string

	err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("prefixmeta: invalid record: %s", e.Reason)
	}
	return fmt.Sprintf("prefixmeta: invalid record: path %q: %s", e.Path, e.Reason)
}

// Unwrap returns the sentinel error for the failure kind.
func (e *ValidationError) Unwrap() error { return e.err }
