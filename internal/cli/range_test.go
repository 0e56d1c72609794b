package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/pagenav/internal/cli"
	"github.com/stockroom/pagenav/internal/pagerange"
)

func TestRange_Table(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name string
		args []string
		bar  string
	}{
		{
			name: "middle",
			args: []string{"range", "--current", "10", "--total", "20"},
			bar:  "‹ Prev 1 … 7 8 9 [10] 11 12 13 … 20 Next ›",
		},
		{
			name: "first page",
			args: []string{"range", "--current", "1", "--total", "20"},
			bar:  "(‹ Prev) [1] 2 3 4 … 20 Next ›",
		},
		{
			name: "narrow window",
			args: []string{"range", "--current", "10", "--total", "20", "--delta", "1"},
			bar:  "‹ Prev 1 … 9 [10] 11 … 20 Next ›",
		},
		{
			name: "single hidden page is shown",
			args: []string{"range", "--current", "4", "--total", "9", "--delta", "1"},
			bar:  "‹ Prev 1 2 3 [4] 5 … 9 Next ›",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRunCLI(t, tt.args...)
			assert.Contains(t, out, tt.bar)
		})
	}
}

func TestRange_Summary(t *testing.T) {
	setupCLITest(t)

	out := mustRunCLI(t, "range", "--current", "50", "--total", "7")
	assert.Contains(t, out, "page 7 of 7")
	assert.Contains(t, out, "(Next ›)")
}

func TestRange_JSON(t *testing.T) {
	setupCLITest(t)

	out := mustRunCLI(t, "range", "--current", "10", "--total", "20", "--delta", "1", "--output", "json")

	var layout pagerange.Layout
	require.NoError(t, json.Unmarshal([]byte(out), &layout))
	assert.Equal(t, []int{1, 9, 10, 11, 20}, layout.Pages())
	assert.True(t, layout.Previous.Enabled)
	assert.Equal(t, 9, layout.Previous.Page)
	assert.True(t, layout.Next.Enabled)
}

func TestRange_YAML(t *testing.T) {
	setupCLITest(t)

	out := mustRunCLI(t, "range", "--current", "2", "--total", "3", "-o", "yaml")
	assert.Contains(t, out, "current_page: 2")
	assert.Contains(t, out, "total_pages: 3")
	assert.Contains(t, out, "type: page")
}

func TestRange_DeltaFromEnvironment(t *testing.T) {
	setupCLITest(t)
	t.Setenv("PAGENAV_DELTA", "1")

	out := mustRunCLI(t, "range", "--current", "10", "--total", "20")
	assert.Contains(t, out, "‹ Prev 1 … 9 [10] 11 … 20 Next ›")
}

func TestRange_FlagOverridesEnvironment(t *testing.T) {
	setupCLITest(t)
	t.Setenv("PAGENAV_DELTA", "1")

	out := mustRunCLI(t, "range", "--current", "10", "--total", "20", "--delta", "0")
	assert.Contains(t, out, "‹ Prev 1 … [10] … 20 Next ›")
}

func TestRange_DeltaFromConfigFile(t *testing.T) {
	setupCLITest(t)

	path := filepath.Join(t.TempDir(), "pagenav.yaml")
	content := "version: 1.0.0\npagination:\n  delta: 1\n  start_at: 1\n  page_size: 20\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out := mustRunCLI(t, "--config", path, "range", "--current", "10", "--total", "20")
	assert.Contains(t, out, "‹ Prev 1 … 9 [10] 11 … 20 Next ›")
}

func TestRange_DeltaFromProjectOverlay(t *testing.T) {
	setupCLITest(t)

	project := t.TempDir()
	dir := filepath.Join(project, ".pagenav")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	content := "pagination:\n  delta: 0\n  start_at: 1\n  page_size: 20\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Setenv("PAGENAV_PROJECT_DIR", project)

	out := mustRunCLI(t, "range", "--current", "10", "--total", "20")
	assert.Contains(t, out, "‹ Prev 1 … [10] … 20 Next ›")
}

func TestRange_Errors(t *testing.T) {
	setupCLITest(t)

	t.Run("missing total", func(t *testing.T) {
		_, err := runCLI(t, "range", "--current", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "total")
	})

	t.Run("unknown output", func(t *testing.T) {
		_, err := runCLI(t, "range", "--current", "1", "--total", "3", "--output", "xml")
		require.ErrorIs(t, err, cli.ErrUnsupportedOutput)
	})

	t.Run("invalid config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		content := "pagination:\n  delta: -1\n  start_at: 1\n  page_size: 20\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := runCLI(t, "--config", path, "range", "--current", "1", "--total", "3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading config")
	})
}
