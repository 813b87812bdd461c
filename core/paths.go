package prefixmeta

import (
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/condakit/prefixmeta/internal/pathutil"
)

// CurrentPathsVersion is the paths_data schema version this implementation
// writes. Version 1 entries carry only a relative path and path type; version
// 2 adds per-entry hashes, sizes, placement methods, and prefix placeholder
// metadata. Serialization never downgrades.
const CurrentPathsVersion = 2

// PathType distinguishes the kind of filesystem entry a path describes.
type PathType uint8

// Path types.
const (
	PathTypeFile PathType = iota
	PathTypeDirectory
	PathTypeSymlink
)

// String returns the interchange spelling of the path type.
func (t PathType) String() string {
	switch t {
	case PathTypeDirectory:
		return "directory"
	case PathTypeSymlink:
		return "symlink"
	default:
		return "file"
	}
}

func parsePathType(s string) (PathType, error) {
	switch s {
	case "", "file":
		return PathTypeFile, nil
	case "directory":
		return PathTypeDirectory, nil
	case "symlink":
		return PathTypeSymlink, nil
	default:
		return 0, fmt.Errorf("%w: unknown path_type %q", ErrMalformed, s)
	}
}

// PlacementMethod records how a file was materialized in the prefix.
type PlacementMethod uint8

// Placement methods. PlacementCopy is the default for documents written
// before placement tracking existed.
const (
	PlacementCopy PlacementMethod = iota
	PlacementHardLink
	PlacementSoftLink
	// PlacementPlaceholder marks entries whose content was rewritten at link
	// time (prefix path substitution). Retained for old documents only.
	PlacementPlaceholder
)

// String returns the interchange spelling of the placement method.
func (m PlacementMethod) String() string {
	switch m {
	case PlacementHardLink:
		return "hardlink"
	case PlacementSoftLink:
		return "softlink"
	case PlacementPlaceholder:
		return "placeholder"
	default:
		return "copy"
	}
}

func parsePlacementMethod(s string) (PlacementMethod, error) {
	switch s {
	case "", "copy":
		return PlacementCopy, nil
	case "hardlink":
		return PlacementHardLink, nil
	case "softlink":
		return PlacementSoftLink, nil
	case "placeholder":
		return PlacementPlaceholder, nil
	default:
		return 0, fmt.Errorf("%w: unknown placement_method %q", ErrMalformed, s)
	}
}

// FileMode describes how prefix placeholder substitution was applied to an
// entry's content.
type FileMode uint8

// File modes. FileModeNone marks entries without placeholder substitution.
const (
	FileModeNone FileMode = iota
	FileModeText
	FileModeBinary
)

// String returns the interchange spelling of the file mode.
func (m FileMode) String() string {
	switch m {
	case FileModeText:
		return "text"
	case FileModeBinary:
		return "binary"
	default:
		return ""
	}
}

func parseFileMode(s string) (FileMode, error) {
	switch s {
	case "":
		return FileModeNone, nil
	case "text":
		return FileModeText, nil
	case "binary":
		return FileModeBinary, nil
	default:
		return 0, fmt.Errorf("%w: unknown file_mode %q", ErrMalformed, s)
	}
}

// PathEntry describes one file placed in the prefix: where it lives relative
// to the prefix root, how it was materialized, and optional integrity and
// placeholder metadata.
type PathEntry struct {
	// RelativePath locates the file below the prefix root. It is always
	// `/`-separated, regardless of host OS.
	RelativePath string

	// PathType distinguishes regular file, directory, and symlink entries.
	PathType PathType

	// PlacementMethod records how the file was created in the prefix.
	PlacementMethod PlacementMethod

	// SHA256 is the hash of the file content as packaged, when known.
	SHA256 digest.Digest

	// SHA256InPrefix is the hash of the file content after prefix placeholder
	// substitution, when the content was altered at link time.
	SHA256InPrefix digest.Digest

	// SizeInBytes is the packaged file size, when known.
	SizeInBytes *uint64

	// PrefixPlaceholder is the build-time prefix string substituted at link
	// time, for entries whose content embeds the installation prefix.
	PrefixPlaceholder string

	// FileMode says whether placeholder substitution treated the content as
	// text or binary. FileModeNone when PrefixPlaceholder is unset.
	FileMode FileMode
}

// AbsolutePath returns the entry's location on the host filesystem below
// prefixRoot. Separator conversion happens here and nowhere else; the entry
// itself stays `/`-separated.
func (e PathEntry) AbsolutePath(prefixRoot string) string {
	return pathutil.ToHost(prefixRoot, e.RelativePath)
}

// PathsData is the manifest of files belonging to a package: an ordered
// sequence of path entries plus the schema version they were read under.
// Entry order is preserved for reproducible serialization; lookups treat the
// sequence as unordered.
type PathsData struct {
	PathsVersion int
	Paths        []PathEntry
}
