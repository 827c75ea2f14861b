package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	require.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG").Level())
	require.Equal(t, zapcore.WarnLevel, ParseLevel(" warn ").Level())
	require.Equal(t, zapcore.InfoLevel, ParseLevel("").Level())
	require.Equal(t, zapcore.InfoLevel, ParseLevel("chatty").Level())
}

func TestParseLevelEnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	require.Equal(t, zapcore.ErrorLevel, ParseLevel("debug").Level())
}

func TestNewWritesJSONToFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "logs", "bentolio.log")
	logger, err := New("debug", path, false)
	require.NoError(t, err)

	logger.Named("carousel").Debug("autoplay paused")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	require.Equal(t, "autoplay paused", entry["message"])
	require.Equal(t, "DEBUG", entry["severity"])
	require.Equal(t, "carousel", entry["logger"])
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	t.Parallel()

	logger, err := New("info", "", false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.NotNil(t, OrNop(nil))
}
