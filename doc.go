// Package prefixmeta reads, writes, and validates prefix records: the
// per-package metadata documents a package manager keeps for every package
// installed into an environment prefix.
//
// A prefix record carries the package's identity (name, version, build),
// its provenance (source archive path, extraction directory, the spec the
// user requested), and the complete manifest of files the package placed
// into the prefix, including how each file was materialized (copied,
// hard-linked, soft-linked, or rewritten by prefix-path substitution).
//
// This package is a thin facade over the [core] subpackage, which holds the
// engine; most programs only need what is re-exported here.
//
// # Quick Start
//
// Read the record for an installed package:
//
//	rec, err := prefixmeta.FromPath("/opt/envs/prod/conda-meta/requests-2.28.2-pyhd8ed1ab_0.json")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rec.Name.Normalized(), rec.Version)
//	for _, f := range rec.Files() {
//	    fmt.Println(f)
//	}
//
// Rewrite it pretty-printed:
//
//	err = prefixmeta.WriteToPath(rec, path, true)
//
// Load every record in a prefix:
//
//	records, err := prefixmeta.CollectFromPrefix(ctx, "/opt/envs/prod")
//
// Relative paths inside records are always `/`-separated, whatever the host
// OS; use [PathEntry.AbsolutePath] to obtain a host filesystem path.
package prefixmeta
