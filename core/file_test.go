package prefixmeta

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPathNotFound(t *testing.T) {
	t.Parallel()

	_, err := FromPath(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFromPathInvalidDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "1.0"}`), 0o644))

	_, err := FromPath(path)
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), path, "error must name the offending file")
}

func TestWriteToPathRoundTrip(t *testing.T) {
	t.Parallel()

	rec := sampleRecord(t)
	for _, pretty := range []bool{true, false} {
		// Parent directories are created implicitly.
		path := filepath.Join(t.TempDir(), CondaMetaDir, rec.Filename())
		require.NoError(t, WriteToPath(rec, path, pretty))

		back, err := FromPath(path)
		require.NoError(t, err, "pretty=%v", pretty)
		assert.Equal(t, rec, back, "pretty=%v", pretty)
	}
}

func TestWriteToPathPrettyFlag(t *testing.T) {
	t.Parallel()

	rec := sampleRecord(t)
	dir := t.TempDir()

	prettyPath := filepath.Join(dir, "pretty.json")
	require.NoError(t, WriteToPath(rec, prettyPath, true))
	prettied, err := os.ReadFile(prettyPath)
	require.NoError(t, err)
	assert.Contains(t, string(prettied), "\n  ")

	compactPath := filepath.Join(dir, "compact.json")
	require.NoError(t, WriteToPath(rec, compactPath, false))
	compact, err := os.ReadFile(compactPath)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
}

// writePrefix materializes records into a prefix's conda-meta directory and
// returns the prefix root.
func writePrefix(tb testing.TB, recs ...*PrefixRecord) string {
	tb.Helper()
	prefix := tb.TempDir()
	for _, rec := range recs {
		path := filepath.Join(prefix, CondaMetaDir, rec.Filename())
		require.NoError(tb, WriteToPath(rec, path, true))
	}
	return prefix
}

func TestCollectFromPrefix(t *testing.T) {
	t.Parallel()

	recA := sampleRecord(t)
	recB := sampleRecord(t)
	recB.Name = mustName(t, "certifi")
	recB.Version = mustVersion(t, "2022.12.7")
	recB.Build = "pyhd8ed1ab_0"
	recC := sampleRecord(t)
	recC.Name = mustName(t, "urllib3")
	recC.Version = mustVersion(t, "1.26.14")
	recC.Build = "pyhd8ed1ab_0"

	prefix := writePrefix(t, recA, recB, recC)

	// conda-meta holds more than record documents; only *.json files count.
	metaDir := filepath.Join(prefix, CondaMetaDir)
	require.NoError(t, os.WriteFile(filepath.Join(metaDir, "history"), []byte("==> log <=="), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(metaDir, "cache.json"), 0o750))

	records, err := CollectFromPrefix(context.Background(), prefix)
	require.NoError(t, err)
	require.Len(t, records, 3)

	var names []string
	for _, rec := range records {
		names = append(names, rec.Name.Normalized())
	}
	assert.Equal(t, []string{"certifi", "requests", "urllib3"}, names, "records must be sorted by name")
}

func TestCollectFromPrefixMissingMetaDir(t *testing.T) {
	t.Parallel()

	records, err := CollectFromPrefix(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollectFromPrefixCorruptRecord(t *testing.T) {
	t.Parallel()

	prefix := writePrefix(t, sampleRecord(t))
	metaDir := filepath.Join(prefix, CondaMetaDir)
	require.NoError(t, os.WriteFile(filepath.Join(metaDir, "corrupt-1.0-0.json"), []byte("{"), 0o644))

	_, err := CollectFromPrefix(context.Background(), prefix)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCollectFromPrefixCanceledContext(t *testing.T) {
	t.Parallel()

	prefix := writePrefix(t, sampleRecord(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CollectFromPrefix(ctx, prefix)
	assert.ErrorIs(t, err, context.Canceled)
}
