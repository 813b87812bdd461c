package prefixmeta

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/condakit/prefixmeta/pkgname"
	"github.com/condakit/prefixmeta/version"
)

// Wire types mirror the interchange document. Field order here fixes the key
// order of serialized output; keep it stable so rewritten records diff
// minimally. Unknown keys in incoming documents are ignored at every level,
// which is what keeps old readers compatible with newer writers.
type recordWire struct {
	Name                   string         `json:"name"`
	Version                string         `json:"version"`
	Build                  string         `json:"build,omitempty"`
	BuildNumber            uint64         `json:"build_number"`
	Subdir                 string         `json:"subdir,omitempty"`
	Depends                []string       `json:"depends,omitempty"`
	Constrains             []string       `json:"constrains,omitempty"`
	MD5                    string         `json:"md5,omitempty"`
	SHA256                 string         `json:"sha256,omitempty"`
	Size                   *uint64        `json:"size,omitempty"`
	PathsData              *pathsDataWire `json:"paths_data,omitempty"`
	PackageTarballFullPath *string        `json:"package_tarball_full_path,omitempty"`
	ExtractedPackageDir    *string        `json:"extracted_package_dir,omitempty"`
	RequestedSpec          *string        `json:"requested_spec,omitempty"`
	Link                   *linkWire      `json:"link,omitempty"`
}

type pathsDataWire struct {
	PathsVersion *int            `json:"paths_version,omitempty"`
	Paths        []pathEntryWire `json:"paths"`
}

type pathEntryWire struct {
	RelativePath      string  `json:"relative_path"`
	PathType          string  `json:"path_type"`
	PlacementMethod   string  `json:"placement_method,omitempty"`
	SHA256            string  `json:"sha256,omitempty"`
	SHA256InPrefix    string  `json:"sha256_in_prefix,omitempty"`
	SizeInBytes       *uint64 `json:"size_in_bytes,omitempty"`
	PrefixPlaceholder string  `json:"prefix_placeholder,omitempty"`
	FileMode          string  `json:"file_mode,omitempty"`
}

type linkWire struct {
	Source string `json:"source,omitempty"`
	Type   uint8  `json:"type,omitempty"`
}

// Parse decodes and validates a prefix record document.
//
// Structurally invalid input fails with [ErrMalformed]; a missing package
// name or version with [ErrMissingField]; duplicate path entries with
// [ErrDuplicatePath]; a paths_version newer than [CurrentPathsVersion] with
// [ErrUnsupportedVersion]. Unknown fields are ignored. The returned record is
// fully validated; Parse never returns a partially populated record.
func Parse(data []byte) (*PrefixRecord, error) {
	var w recordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if w.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	name, err := pkgname.Parse(w.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if w.Version == "" {
		return nil, fmt.Errorf("%w: version", ErrMissingField)
	}
	ver, err := version.Parse(w.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	pathsData, err := decodePathsData(w.PathsData)
	if err != nil {
		return nil, err
	}
	sha, err := parseSHA256(w.SHA256)
	if err != nil {
		return nil, err
	}

	rec := &PrefixRecord{
		Name:                   name,
		Version:                ver,
		Build:                  w.Build,
		BuildNumber:            w.BuildNumber,
		Subdir:                 w.Subdir,
		Depends:                w.Depends,
		Constrains:             w.Constrains,
		MD5:                    w.MD5,
		SHA256:                 sha,
		Size:                   w.Size,
		PathsData:              pathsData,
		PackageTarballFullPath: w.PackageTarballFullPath,
		ExtractedPackageDir:    w.ExtractedPackageDir,
		RequestedSpec:          w.RequestedSpec,
	}
	if w.Link != nil {
		rec.Link = &Link{Source: w.Link.Source, Type: LinkType(w.Link.Type)}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// decodePathsData interprets the paths array under its declared schema
// version. Version 1 documents predate per-entry hashes and placement
// tracking, so only relative_path and path_type are honored for them.
func decodePathsData(w *pathsDataWire) (PathsData, error) {
	if w == nil {
		return PathsData{PathsVersion: CurrentPathsVersion}, nil
	}

	// Documents written before versioning carry no paths_version; they are
	// version 1 by definition.
	v := 1
	if w.PathsVersion != nil {
		v = *w.PathsVersion
	}
	if v < 1 || v > CurrentPathsVersion {
		return PathsData{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	var entries []PathEntry
	for _, ew := range w.Paths {
		if ew.RelativePath == "" {
			return PathsData{}, fmt.Errorf("%w: relative_path", ErrMissingField)
		}
		pt, err := parsePathType(ew.PathType)
		if err != nil {
			return PathsData{}, err
		}
		e := PathEntry{RelativePath: ew.RelativePath, PathType: pt}

		if v >= 2 {
			if e.PlacementMethod, err = parsePlacementMethod(ew.PlacementMethod); err != nil {
				return PathsData{}, err
			}
			if e.SHA256, err = parseSHA256(ew.SHA256); err != nil {
				return PathsData{}, err
			}
			if e.SHA256InPrefix, err = parseSHA256(ew.SHA256InPrefix); err != nil {
				return PathsData{}, err
			}
			if e.FileMode, err = parseFileMode(ew.FileMode); err != nil {
				return PathsData{}, err
			}
			e.SizeInBytes = ew.SizeInBytes
			e.PrefixPlaceholder = ew.PrefixPlaceholder
		}
		entries = append(entries, e)
	}
	return PathsData{PathsVersion: v, Paths: entries}, nil
}

// parseSHA256 accepts either the canonical "sha256:<hex>" spelling or the
// bare hex form older writers produced, and returns the canonical digest.
func parseSHA256(s string) (digest.Digest, error) {
	if s == "" {
		return "", nil
	}
	if !strings.ContainsRune(s, ':') {
		s = string(digest.SHA256) + ":" + s
	}
	d, err := digest.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedDigest, s, err)
	}
	if d.Algorithm() != digest.SHA256 {
		return "", fmt.Errorf("%w: %q: expected sha256", ErrMalformedDigest, s)
	}
	return d, nil
}

// Marshal serializes a record to its interchange document. Pretty output uses
// two-space indentation; compact output omits all insignificant whitespace.
// The two forms are byte-identical aside from whitespace. Marshal always
// writes [CurrentPathsVersion] and never downgrades; relative paths keep
// their `/` separators on every host OS.
func Marshal(r *PrefixRecord, pretty bool) ([]byte, error) {
	pathsVersion := CurrentPathsVersion
	pd := &pathsDataWire{
		PathsVersion: &pathsVersion,
		Paths:        make([]pathEntryWire, 0, len(r.PathsData.Paths)),
	}
	for _, e := range r.PathsData.Paths {
		ew := pathEntryWire{
			RelativePath:      e.RelativePath,
			PathType:          e.PathType.String(),
			SHA256:            string(e.SHA256),
			SHA256InPrefix:    string(e.SHA256InPrefix),
			SizeInBytes:       e.SizeInBytes,
			PrefixPlaceholder: e.PrefixPlaceholder,
			FileMode:          e.FileMode.String(),
		}
		// Copy is the documented default; leaving it implicit keeps documents
		// identical to ones written before placement tracking.
		if e.PlacementMethod != PlacementCopy {
			ew.PlacementMethod = e.PlacementMethod.String()
		}
		pd.Paths = append(pd.Paths, ew)
	}

	w := recordWire{
		Name:                   r.Name.Source(),
		Version:                r.Version.String(),
		Build:                  r.Build,
		BuildNumber:            r.BuildNumber,
		Subdir:                 r.Subdir,
		Depends:                r.Depends,
		Constrains:             r.Constrains,
		MD5:                    r.MD5,
		SHA256:                 string(r.SHA256),
		Size:                   r.Size,
		PathsData:              pd,
		PackageTarballFullPath: r.PackageTarballFullPath,
		ExtractedPackageDir:    r.ExtractedPackageDir,
		RequestedSpec:          r.RequestedSpec,
	}
	if r.Link != nil {
		w.Link = &linkWire{Source: r.Link.Source, Type: uint8(r.Link.Type)}
	}

	if pretty {
		return json.MarshalIndent(w, "", "  ")
	}
	return json.Marshal(w)
}
