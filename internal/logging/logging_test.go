package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/pagenav/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "WARN", want: zerolog.WarnLevel},
		{in: " error ", want: zerolog.ErrorLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "chatty", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pagenav.log")

	result := logging.NewLoggerWithPath(logging.Config{
		Level:  "debug",
		Format: logging.FormatJSON,
		Output: logging.OutputFile,
		File:   path,
	})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Debug().Str("page", "3").Msg("page changed")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"page changed"`)
	assert.Contains(t, string(data), `"page":"3"`)
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestTraceID(t *testing.T) {
	t.Setenv("PAGENAV_TRACE_ID", "")

	ctx := context.Background()
	assert.Empty(t, logging.TraceIDFromContext(ctx))

	generated := logging.GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26, "ULID string length")

	ctx = logging.WithTrace(ctx, zerolog.Nop(), generated)
	assert.Equal(t, generated, logging.TraceIDFromContext(ctx))
	assert.Equal(t, generated, logging.GetOrGenerateTraceID(ctx))
	assert.NotNil(t, logging.FromContext(ctx))
}

func TestTraceID_EnvOverride(t *testing.T) {
	t.Setenv("PAGENAV_TRACE_ID", "fixed-trace")
	assert.Equal(t, "fixed-trace", logging.GetOrGenerateTraceID(context.Background()))
}
