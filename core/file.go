package prefixmeta

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CondaMetaDir is the per-prefix directory that holds one record document per
// installed package.
const CondaMetaDir = "conda-meta"

// collectWorkers bounds the concurrent reads in CollectFromPrefix.
const collectWorkers = 8

// FromPath reads and parses the record document at path.
//
// A nonexistent path fails with an error satisfying
// errors.Is(err, fs.ErrNotExist); an invalid document fails with the
// underlying parse error, wrapped with the file path for context.
func FromPath(path string) (*PrefixRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prefix record: %w", err)
	}
	rec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse prefix record %s: %w", path, err)
	}
	return rec, nil
}

// WriteToPath serializes the record and writes it to path, creating parent
// directories as needed.
//
// The write is not atomic: a crash mid-write can leave a truncated document.
// Callers that need crash safety must write to a temp file and rename it
// themselves; installation orchestrators already serialize writes per prefix.
func WriteToPath(r *PrefixRecord, path string, pretty bool) error {
	data, err := Marshal(r, pretty)
	if err != nil {
		return fmt.Errorf("serialize prefix record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create record directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefix record: %w", err)
	}
	return nil
}

// CollectFromPrefix reads every record document under the prefix's conda-meta
// directory. Documents are read concurrently; results are sorted by
// normalized package name. A prefix without a conda-meta directory has no
// packages installed and yields an empty result, not an error. Any unreadable
// or invalid document fails the whole collection with its underlying error.
func CollectFromPrefix(ctx context.Context, prefixRoot string) ([]*PrefixRecord, error) {
	metaDir := filepath.Join(prefixRoot, CondaMetaDir)
	dirEntries, err := os.ReadDir(metaDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", CondaMetaDir, err)
	}

	var names []string
	for _, de := range dirEntries {
		// conda-meta also holds non-record files such as "history".
		if !de.IsDir() && strings.HasSuffix(de.Name(), ".json") {
			names = append(names, de.Name())
		}
	}

	records := make([]*PrefixRecord, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(collectWorkers)
	for i, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := FromPath(filepath.Join(metaDir, name))
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name.Normalized() < records[j].Name.Normalized()
	})
	return records, nil
}
