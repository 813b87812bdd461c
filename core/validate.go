package prefixmeta

import (
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/condakit/prefixmeta/internal/pathutil"
)

// Validate checks the record's structural consistency: required identity
// fields, a supported paths version, clean and unique relative paths, and
// well-formed digests. It never touches the filesystem; whether referenced
// archive paths still exist is the caller's concern.
func (r *PrefixRecord) Validate() error {
	if r.Name.IsZero() {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if r.Version.IsZero() {
		return fmt.Errorf("%w: version", ErrMissingField)
	}
	if v := r.PathsData.PathsVersion; v < 1 || v > CurrentPathsVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	if err := validateDigest(r.SHA256); err != nil {
		return err
	}
	if r.Link != nil {
		if lt := r.Link.Type; lt < LinkTypeHardLink || lt > LinkTypeDirectory {
			return &ValidationError{Reason: fmt.Sprintf("unknown link type %d", lt), err: ErrMalformed}
		}
	}

	seen := make(map[string]struct{}, len(r.PathsData.Paths))
	for _, e := range r.PathsData.Paths {
		if !pathutil.IsClean(e.RelativePath) {
			return &ValidationError{
				Path:   e.RelativePath,
				Reason: "must be a clean, `/`-separated relative path",
				err:    ErrUnsafePath,
			}
		}
		if _, dup := seen[e.RelativePath]; dup {
			return &ValidationError{
				Path:   e.RelativePath,
				Reason: "appears more than once",
				err:    ErrDuplicatePath,
			}
		}
		seen[e.RelativePath] = struct{}{}

		if err := validateDigest(e.SHA256); err != nil {
			return err
		}
		if err := validateDigest(e.SHA256InPrefix); err != nil {
			return err
		}
	}
	return nil
}

// validateDigest accepts the empty digest (field absent) and otherwise
// requires a well-formed algorithm:hex digest string.
func validateDigest(d digest.Digest) error {
	if d == "" {
		return nil
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrMalformedDigest, d, err)
	}
	return nil
}
