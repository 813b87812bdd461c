// Package prefixmeta implements the prefix record engine: the data model for
// per-package installation metadata, its JSON interchange codec, structural
// validation, and file storage.
//
// A prefix record describes one package installed into an environment prefix:
// identity and build info, provenance (source archive, extraction directory,
// requested spec), and the manifest of files the package placed into the
// prefix together with per-file linking metadata.
//
// Every operation here is a pure function of its input (plus one filesystem
// read or write for the file variants); records are plain values and are not
// mutated after construction. Most callers should use the root
// github.com/condakit/prefixmeta package, which re-exports this API.
package prefixmeta
