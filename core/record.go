package prefixmeta

import (
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/condakit/prefixmeta/internal/pathutil"
	"github.com/condakit/prefixmeta/pkgname"
	"github.com/condakit/prefixmeta/version"
)

// LinkType identifies the mechanism used to link a package into a prefix.
// The numbering matches the interchange format.
type LinkType uint8

// Link types.
const (
	LinkTypeHardLink LinkType = iota + 1
	LinkTypeSoftLink
	LinkTypeCopy
	LinkTypeDirectory
)

// Link records where a package was linked from and how, so relocated
// environments can be detected.
type Link struct {
	// Source is the extracted package directory the files were linked from.
	Source string

	// Type is the linking mechanism used for the package as a whole.
	Type LinkType
}

// PrefixRecord is the persisted metadata for one package installed into a
// prefix: identity and build info, provenance, and the manifest of files the
// package placed into the prefix.
//
// A record is a plain value. It is created either by [Parse] / [FromPath] or
// programmatically after a package has been linked, and is not mutated
// afterwards; rewriting storage means constructing a new value and calling
// [WriteToPath].
type PrefixRecord struct {
	// Name is the package name this record describes.
	Name pkgname.PackageName

	// Version is the package version, preserving its original spelling.
	Version version.VersionWithSource

	// Build is the build string, e.g. "pyhd8ed1ab_0".
	Build string

	// BuildNumber is the build counter within a version.
	BuildNumber uint64

	// Subdir is the platform subdirectory the package was built for.
	Subdir string

	// Depends lists the package's runtime dependency specs.
	Depends []string

	// Constrains lists optional version constraints on other packages.
	Constrains []string

	// MD5 is the legacy hex-encoded MD5 of the source archive, when known.
	// It is carried verbatim for older documents; new hashes use SHA256.
	MD5 string

	// SHA256 is the digest of the source archive, when known.
	SHA256 digest.Digest

	// Size is the source archive size in bytes, when known.
	Size *uint64

	// PathsData is the manifest of files placed into the prefix.
	PathsData PathsData

	// PackageTarballFullPath is the absolute path the source archive was
	// installed from. Nil if the package was not installed from a cached
	// archive.
	PackageTarballFullPath *string

	// ExtractedPackageDir is the absolute path of the extraction cache
	// directory. Nil if unknown.
	ExtractedPackageDir *string

	// RequestedSpec distinguishes how the package was requested. Nil means it
	// was installed only as a dependency of another package; an empty string
	// means it was requested directly with no version constraint; otherwise
	// it is the constraint the user supplied. The absent/empty distinction is
	// load-bearing and must survive serialization.
	RequestedSpec *string

	// Link records which location the package was linked from, when known.
	Link *Link
}

// Files returns the sorted, deduplicated relative paths of every file in the
// record. The list is derived from PathsData on every call rather than stored,
// so it can never disagree with the manifest.
func (r *PrefixRecord) Files() []string {
	paths := make([]string, 0, len(r.PathsData.Paths))
	for _, e := range r.PathsData.Paths {
		paths = append(paths, e.RelativePath)
	}
	return pathutil.SortUnique(paths)
}

// Filename returns the conventional metadata file name for this record,
// "<name>-<version>-<build>.json". Callers remain free to store records
// under any path they choose.
func (r *PrefixRecord) Filename() string {
	return fmt.Sprintf("%s-%s-%s.json", r.Name.Normalized(), r.Version, r.Build)
}

// String returns a short human-readable summary.
func (r *PrefixRecord) String() string {
	return fmt.Sprintf("PrefixRecord(name=%q, version=%q)", r.Name.Normalized(), r.Version)
}
