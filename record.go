package prefixmeta

import (
	"context"

	metacore "github.com/condakit/prefixmeta/core"
)

// Parse decodes and validates a prefix record document.
func Parse(data []byte) (*PrefixRecord, error) {
	return metacore.Parse(data)
}

// Marshal serializes a record to its interchange document, pretty-printed or
// compact.
func Marshal(rec *PrefixRecord, pretty bool) ([]byte, error) {
	return metacore.Marshal(rec, pretty)
}

// FromPath reads and parses the record document at path.
func FromPath(path string) (*PrefixRecord, error) {
	return metacore.FromPath(path)
}

// WriteToPath serializes the record and writes it to path, creating parent
// directories as needed. The write is not atomic.
func WriteToPath(rec *PrefixRecord, path string, pretty bool) error {
	return metacore.WriteToPath(rec, path, pretty)
}

// CollectFromPrefix reads every record document under the prefix's conda-meta
// directory, sorted by normalized package name.
func CollectFromPrefix(ctx context.Context, prefixRoot string) ([]*PrefixRecord, error) {
	return metacore.CollectFromPrefix(ctx, prefixRoot)
}
