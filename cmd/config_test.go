package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTestLog points the logger at a temporary file for the rest of the test.
func useTestLog(t *testing.T) {
	t.Helper()

	previous := viper.GetString(logFilenameKey)
	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "typepath.log"))

	t.Cleanup(func() { viper.Set(logFilenameKey, previous) })
}

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "typepath", configBaseName)
	assert.Equal(t, "typepath.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "no-cache", noCacheFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", generateParallelFlagName)
	assert.Equal(t, "generate.parallel", generateParallelConfigKey)
	assert.Equal(t, "generate.grammar", grammarConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "cache.file", cacheFileConfigKey)
	assert.Equal(t, ".typepath-cache.yaml", defaultCacheFile)
	assert.Equal(t, false, defaultNoCache)
	assert.Equal(t, "TYPEPATH", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "lexical", viper.GetString(grammarConfigKey))
	assert.Equal(t, ".typepath-cache.yaml", viper.GetString(cacheFileConfigKey))
	assert.Positive(t, viper.GetInt(generateParallelConfigKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper case", "INFO", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", " warning ", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "out.log")
	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	slog.Debug("hello from test")

	assert.FileExists(t, logPath)
}
