package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stockroom/pagenav/internal/cli"
	"github.com/stockroom/pagenav/internal/config"
)

const stockFile = "testdata/stock.yaml"

// setupCLITest isolates configuration from the user's home and environment.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("PAGENAV_LOG_LEVEL", "error")
	t.Setenv("PAGENAV_HOME", home)
	t.Setenv("PAGENAV_CONFIG", "")
	t.Setenv("PAGENAV_PROJECT_DIR", t.TempDir())
	t.Setenv("PAGENAV_OUTPUT", "")
	t.Setenv("PAGENAV_DELTA", "")
	t.Setenv("PAGENAV_PAGE_SIZE", "")
	t.Setenv("PAGENAV_ADDR", "")
	t.Cleanup(func() { config.SetGlobalConfig(nil) })
	return home
}

// runCLI executes the root command with args and returns its combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIContext(t, context.Background(), args...)
}

func runCLIContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

// mustRunCLI is runCLI for commands expected to succeed.
func mustRunCLI(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	require.NoError(t, err, out)
	return out
}
