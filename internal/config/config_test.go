package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyremap/internal/logging"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range []string{EnvSettings, EnvStrict, logging.EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, DefaultSettingsPath, cfg.SettingsPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultYAMLIndent, cfg.YAMLIndent)
	assert.False(t, cfg.Strict)
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	path := writeFile(t, dir, "remapctl.toml", `
settings_path = "C:/settings/default.json"
log_level = "debug"
strict = true
yaml_indent = 4
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "C:/settings/default.json", cfg.SettingsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 4, cfg.YAMLIndent)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettingsPath, cfg.SettingsPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	path := writeFile(t, dir, "remapctl.toml", `settings_path = "from-toml.json"`)
	t.Setenv(EnvSettings, "from-env.json")
	t.Setenv(EnvStrict, "yes")

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", cfg.SettingsPath)
	assert.True(t, cfg.Strict)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty.
	require.NoError(t, os.Unsetenv(EnvSettings))

	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "REMAPCTL_SETTINGS=dotenv.json\n")

	t.Cleanup(func() { _ = os.Unsetenv(EnvSettings) })

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "dotenv.json", cfg.SettingsPath)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"bad syntax", `settings_path = `, "config parse failed"},
		{"unknown key", `colour = "red"`, "unknown key"},
		{"bad level", `log_level = "loud"`, "is not a level"},
		{"bad indent", `yaml_indent = 12`, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".toml", tt.body)

			_, err := Load(path, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Config{SettingsPath: "x.json", LogLevel: "warn", YAMLIndent: 2}))
	require.Error(t, Validate(Config{SettingsPath: " ", LogLevel: "warn", YAMLIndent: 2}))
}
