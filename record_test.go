package prefixmeta_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condakit/prefixmeta"
)

// A document in the shape an installer writes into conda-meta.
const requestsDoc = `{
  "name": "requests",
  "version": "2.28.2",
  "build": "pyhd8ed1ab_0",
  "build_number": 0,
  "subdir": "noarch",
  "requested_spec": "",
  "package_tarball_full_path": "/home/user/pkgs/requests-2.28.2-pyhd8ed1ab_0.tar.bz2",
  "extracted_package_dir": "/home/user/pkgs/requests-2.28.2-pyhd8ed1ab_0",
  "paths_data": {
    "paths_version": 2,
    "paths": [
      {"relative_path": "lib/requests/__init__.py", "path_type": "file"}
    ]
  }
}`

func TestEndToEnd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "requests-2.28.2-pyhd8ed1ab_0.json")
	require.NoError(t, os.WriteFile(path, []byte(requestsDoc), 0o644))

	rec, err := prefixmeta.FromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "requests", rec.Name.Normalized())
	assert.Equal(t, "2.28.2", rec.Version.String())
	assert.Equal(t, []string{"lib/requests/__init__.py"}, rec.Files())

	// Directly requested with no constraint: present but empty, which is
	// distinct from absent (installed as a dependency).
	require.NotNil(t, rec.RequestedSpec)
	assert.Empty(t, *rec.RequestedSpec)

	require.NotNil(t, rec.PackageTarballFullPath)
	assert.Equal(t, "/home/user/pkgs/requests-2.28.2-pyhd8ed1ab_0.tar.bz2", *rec.PackageTarballFullPath)
	require.NotNil(t, rec.ExtractedPackageDir)
	assert.Equal(t, "/home/user/pkgs/requests-2.28.2-pyhd8ed1ab_0", *rec.ExtractedPackageDir)

	assert.Equal(t, `PrefixRecord(name="requests", version="2.28.2")`, rec.String())
	assert.Equal(t, "requests-2.28.2-pyhd8ed1ab_0.json", rec.Filename())
}

func TestRewriteRoundTrip(t *testing.T) {
	t.Parallel()

	rec, err := prefixmeta.Parse([]byte(requestsDoc))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), prefixmeta.CondaMetaDir, rec.Filename())
	require.NoError(t, prefixmeta.WriteToPath(rec, path, true))

	back, err := prefixmeta.FromPath(path)
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}

func TestParseRejectsEscapingPath(t *testing.T) {
	t.Parallel()

	doc := `{
	  "name": "evil",
	  "version": "1.0",
	  "paths_data": {
	    "paths_version": 2,
	    "paths": [{"relative_path": "../escape.txt", "path_type": "file"}]
	  }
	}`
	_, err := prefixmeta.Parse([]byte(doc))
	require.ErrorIs(t, err, prefixmeta.ErrUnsafePath)

	var valErr *prefixmeta.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "../escape.txt", valErr.Path)
}
