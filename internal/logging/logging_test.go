package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cbamcalc/internal/logging"
)

func TestNewLogger_LevelAndTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "warn", Format: logging.FormatJSON}, &buf)

	ctx := logging.ContextWithTraceID(context.Background(), "01TESTTRACE")
	logger.Info().Ctx(ctx).Msg("dropped")
	logger.Warn().Ctx(ctx).Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "01TESTTRACE", entry[logging.TraceIDField])
}

func TestNewLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "loud"}, &buf)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	t.Run("no logger on context", func(t *testing.T) {
		l := logging.FromContext(context.Background())
		require.NotNil(t, l)
		l.Error().Msg("must not panic")
	})

	t.Run("logger on context", func(t *testing.T) {
		var buf bytes.Buffer
		base := logging.ComponentLogger(logging.NewLogger(logging.Config{}, &buf), "engine")
		ctx := base.WithContext(context.Background())
		logging.FromContext(ctx).Info().Msg("hello")
		assert.Contains(t, buf.String(), `"component":"engine"`)
	})
}

func TestGetOrGenerateTraceID(t *testing.T) {
	t.Setenv(logging.EnvTraceID, "")
	generated := logging.GetOrGenerateTraceID(context.Background())
	assert.Len(t, generated, 26)

	ctx := logging.ContextWithTraceID(context.Background(), "fixed")
	assert.Equal(t, "fixed", logging.GetOrGenerateTraceID(ctx))

	t.Setenv(logging.EnvTraceID, "from-env")
	assert.Equal(t, "from-env", logging.GetOrGenerateTraceID(context.Background()))
	assert.Equal(t, "fixed", logging.GetOrGenerateTraceID(ctx))
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("stderr output", func(t *testing.T) {
		result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputStderr})
		assert.False(t, result.UsingFile)
		assert.NoError(t, result.Close())
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "cbamcalc.log")
		result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile, File: path})
		require.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)
		result.Logger.Info().Msg("to file")
		require.NoError(t, result.Close())
		assert.FileExists(t, path)
	})
}
