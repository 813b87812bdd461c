package prefixmeta

import metacore "github.com/condakit/prefixmeta/core"

// --- Re-exports from core ---

// PrefixRecord is the persisted metadata for one package installed into a
// prefix.
type PrefixRecord = metacore.PrefixRecord

// PathsData is the manifest of files belonging to a package.
type PathsData = metacore.PathsData

// PathEntry describes one file placed in the prefix.
type PathEntry = metacore.PathEntry

// PathType distinguishes the kind of filesystem entry a path describes.
type PathType = metacore.PathType

// PlacementMethod records how a file was materialized in the prefix.
type PlacementMethod = metacore.PlacementMethod

// FileMode describes how prefix placeholder substitution was applied.
type FileMode = metacore.FileMode

// Link records where a package was linked from and how.
type Link = metacore.Link

// LinkType identifies the mechanism used to link a package into a prefix.
type LinkType = metacore.LinkType

// ValidationError describes why a record failed validation.
type ValidationError = metacore.ValidationError

// Path type constants.
const (
	PathTypeFile      = metacore.PathTypeFile
	PathTypeDirectory = metacore.PathTypeDirectory
	PathTypeSymlink   = metacore.PathTypeSymlink
)

// Placement method constants.
const (
	PlacementCopy        = metacore.PlacementCopy
	PlacementHardLink    = metacore.PlacementHardLink
	PlacementSoftLink    = metacore.PlacementSoftLink
	PlacementPlaceholder = metacore.PlacementPlaceholder
)

// File mode constants.
const (
	FileModeNone   = metacore.FileModeNone
	FileModeText   = metacore.FileModeText
	FileModeBinary = metacore.FileModeBinary
)

// Link type constants.
const (
	LinkTypeHardLink  = metacore.LinkTypeHardLink
	LinkTypeSoftLink  = metacore.LinkTypeSoftLink
	LinkTypeCopy      = metacore.LinkTypeCopy
	LinkTypeDirectory = metacore.LinkTypeDirectory
)

// CurrentPathsVersion is the paths_data schema version this implementation
// writes.
const CurrentPathsVersion = metacore.CurrentPathsVersion

// CondaMetaDir is the per-prefix directory that holds record documents.
const CondaMetaDir = metacore.CondaMetaDir
