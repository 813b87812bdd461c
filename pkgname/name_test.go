package pkgname

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		n, err := Parse("Requests")
		require.NoError(t, err)
		assert.Equal(t, "Requests", n.Source())
		assert.Equal(t, "requests", n.Normalized())
		assert.False(t, n.IsZero())
	})

	t.Run("allowed punctuation", func(t *testing.T) {
		t.Parallel()
		n, err := Parse("ruamel.yaml_clib-0")
		require.NoError(t, err)
		assert.Equal(t, "ruamel.yaml_clib-0", n.Normalized())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("")
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("invalid characters", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"has space", "semi;colon", "sl/ash", "unié"} {
			_, err := Parse(s)
			assert.ErrorIs(t, err, ErrInvalidName, "Parse(%q)", s)
		}
	})
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	n, err := Parse("NumPy")
	require.NoError(t, err)

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `"NumPy"`, string(data))

	var back PackageName
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, n, back)
}

func TestUnmarshalEmptyIsZero(t *testing.T) {
	t.Parallel()

	var n PackageName
	require.NoError(t, json.Unmarshal([]byte(`""`), &n))
	assert.True(t, n.IsZero())
}
