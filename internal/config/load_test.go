package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/kdc-shelver/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value leaves the variable unset so defaults apply.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
		if value == "" {
			require.NoError(t, os.Unsetenv(name), "Failed to unset environment variable %s", name)
		}
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kdcshelf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"KDC_LOG_LEVEL":  "",
		"KDC_LOG_FORMAT": "",
		"KDC_QUIZ_SEED":  "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "warn", cfg.Log.Level, "Default log level should be 'warn'")
	assert.Equal(t, "text", cfg.Log.Format, "Default log format should be 'text'")
	assert.Zero(t, cfg.Quiz.Seed, "Default seed should be random (0)")
	assert.Empty(t, cfg.Quiz.Templates, "No templates should be configured by default")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"KDC_LOG_LEVEL":  "debug",
		"KDC_LOG_FORMAT": "json",
		"KDC_QUIZ_SEED":  "42",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "debug", cfg.Log.Level, "Log level should be loaded from environment variables")
	assert.Equal(t, "json", cfg.Log.Format, "Log format should be loaded from environment variables")
	assert.Equal(t, uint64(42), cfg.Quiz.Seed, "Seed should be loaded from environment variables")
}

// TestLoadFile verifies that settings and quiz templates are read from a config file
// and that environment variables still win.
func TestLoadFile(t *testing.T) {
	setupEnv(t, map[string]string{
		"KDC_LOG_LEVEL":  "error",
		"KDC_LOG_FORMAT": "",
		"KDC_QUIZ_SEED":  "",
	})

	path := writeConfigFile(t, `
log:
  level: info
  format: json
quiz:
  seed: 7
  templates:
    - - {class: "813.5", author: "갤300"}
      - {class: "813.5", author: "게300", vol: "v.1"}
`)

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level, "Environment should override the file")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, uint64(7), cfg.Quiz.Seed)
	require.Len(t, cfg.Quiz.Templates, 1)
	assert.Equal(t, []domain.CallNumber{
		{Class: "813.5", Author: "갤300"},
		{Class: "813.5", Author: "게300", Vol: "v.1"},
	}, cfg.Quiz.Templates[0])
}

// TestLoadFileMissing verifies that an explicit config path must exist.
func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		file           string
		errorSubstring string
	}{
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"KDC_LOG_LEVEL": "invalid-level",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log format",
			envVars: map[string]string{
				"KDC_LOG_FORMAT": "xml",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Template with a single call number",
			file: `
quiz:
  templates:
    - - {class: "100"}
`,
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := map[string]string{
				"KDC_LOG_LEVEL":  "",
				"KDC_LOG_FORMAT": "",
				"KDC_QUIZ_SEED":  "",
			}
			for k, v := range tc.envVars {
				env[k] = v
			}
			setupEnv(t, env)

			path := ""
			if tc.file != "" {
				path = writeConfigFile(t, tc.file)
			}

			cfg, err := LoadFile(path)

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

func TestValidateAfterOverride(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "info", Format: "text"}}
	require.NoError(t, cfg.Validate())

	cfg.Log.Level = "loud"
	assert.ErrorContains(t, cfg.Validate(), "validation failed")
}
