package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/pagenav/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SectionReplaced(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, `
pagination:
  delta: 1
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 1, target.Pagination.Delta)
	assert.Equal(t, 0, target.Pagination.PageSize, "absent fields in a replaced section are zeroed")
	assert.Equal(t, "table", target.Output.DefaultFormat, "absent sections are untouched")
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.New()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
server:
  addr: ":9999"
  api_version: "/v2"
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, ":9999", target.Server.Addr)
	assert.Equal(t, "/v2", target.Server.APIVersion)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "whatever.yaml"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("wrong section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), writeOverlay(t, "pagination: [1, 2]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"pagination"`)
	})

	t.Run("empty file", func(t *testing.T) {
		require.NoError(t, config.ShallowMergeYAML(config.New(), writeOverlay(t, "# nothing\n")))
	})
}
