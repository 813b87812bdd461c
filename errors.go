package prefixmeta

import metacore "github.com/condakit/prefixmeta/core"

// Errors re-exported from core.
var (
	// ErrMalformed is returned when a document is not well-formed.
	ErrMalformed = metacore.ErrMalformed

	// ErrMissingField is returned when a required field is absent or empty.
	ErrMissingField = metacore.ErrMissingField

	// ErrDuplicatePath is returned when two path entries share a relative path.
	ErrDuplicatePath = metacore.ErrDuplicatePath

	// ErrUnsupportedVersion is returned when paths_version is newer than this
	// implementation supports.
	ErrUnsupportedVersion = metacore.ErrUnsupportedVersion

	// ErrMalformedDigest is returned when a hash field is not a valid digest.
	ErrMalformedDigest = metacore.ErrMalformedDigest

	// ErrUnsafePath is returned when a path entry is not a clean relative path.
	ErrUnsafePath = metacore.ErrUnsafePath
)
