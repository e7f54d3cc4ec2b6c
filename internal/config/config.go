package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"keyremap/internal/common"
	"keyremap/internal/logging"
)

const (
	EnvSettings = "REMAPCTL_SETTINGS"
	EnvStrict   = "REMAPCTL_STRICT"

	DefaultSettingsPath = "default.json"
	DefaultYAMLIndent   = 2
)

// Config is the remapctl tool configuration.
type Config struct {
	SettingsPath string `toml:"settings_path"`
	LogLevel     string `toml:"log_level"`
	// Strict turns validation warnings into a failing exit status.
	Strict     bool `toml:"strict"`
	YAMLIndent int  `toml:"yaml_indent"`
}

// Load reads the TOML file at path (a missing file is fine), loads envFile
// into the environment when it exists, applies environment overrides and
// defaults, and validates the result.
func Load(path, envFile string) (Config, error) {
	var cfg Config

	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("env load failed (%s): %w", envFile, err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadToml(path string, out *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("config load failed (%s): %w", path, err)
	}

	md, err := toml.Decode(string(data), out)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvSettings)); v != "" {
		cfg.SettingsPath = v
	}

	if v := strings.TrimSpace(os.Getenv(logging.EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvStrict))) {
	case "1", "true", "yes", "on":
		cfg.Strict = true
	case "0", "false", "no", "off":
		cfg.Strict = false
	}
}

func applyDefaults(cfg *Config) {
	if cfg.SettingsPath == "" {
		cfg.SettingsPath = DefaultSettingsPath
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.YAMLIndent == 0 {
		cfg.YAMLIndent = DefaultYAMLIndent
	}
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.SettingsPath) == "" {
		return fmt.Errorf("config missing settings_path")
	}

	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("config log_level %q is not a level", cfg.LogLevel)
	}

	if !common.InRange(1, cfg.YAMLIndent, 8) {
		return fmt.Errorf("config yaml_indent %d out of range 1..8", cfg.YAMLIndent)
	}

	return nil
}
