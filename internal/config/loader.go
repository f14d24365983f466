package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/haywan-uz/haywan-frontend/internal/defs"
)

// Environment variables consulted by the loader.
const (
	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = defs.EnvPrefix + "CONFIG"

	// EnvDebug forces debug logging when set to a true value.
	EnvDebug = defs.EnvPrefix + "DEBUG"

	// EnvPackageRunner overrides package_runner.
	EnvPackageRunner = defs.EnvPrefix + "PACKAGE_RUNNER"

	// EnvPackageManager overrides package_manager.
	EnvPackageManager = defs.EnvPrefix + "PACKAGE_MANAGER"
)

// Loader reads the user configuration file.
type Loader struct {
	logger *slog.Logger
	getenv func(string) string
}

// NewLoader creates a Loader. If logger is nil, a discard logger is used.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger, getenv: os.Getenv}
}

// DefaultPath returns the configuration file location:
// $HAYWAN_CONFIG, else <user config dir>/haywan/config.yaml.
func (l *Loader) DefaultPath() (string, error) {
	if p := l.getenv(EnvConfigPath); p != "" {
		return filepath.Clean(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(dir, defs.AppName, defs.ConfigFileName), nil
}

// Load reads the file at path over the built-in defaults, applies
// environment overrides and validates the result. A missing file yields the
// defaults. Invalid YAML is logged as a warning and the defaults are used.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	loaded, err := loadYAMLFile(path, cfg)
	switch {
	case errors.Is(err, ErrInvalidYAML):
		l.logger.Warn("invalid config file, using defaults", "path", path, "error", err)
		cfg = NewDefaultConfig()
	case err != nil:
		return nil, err
	case !loaded:
		l.logger.Debug("config file not found, using defaults", "path", path)
	default:
		l.logger.Debug("config file loaded", "path", path)
	}

	applyDefaults(cfg)
	l.applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies HAYWAN_* variables on top of file values.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := l.getenv(EnvPackageRunner); v != "" {
		cfg.PackageRunner = v
	}
	if v := l.getenv(EnvPackageManager); v != "" {
		cfg.PackageManager = v
	}
	if v := l.getenv(EnvDebug); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil && debug {
			cfg.LogLevel = "debug"
		}
	}
}

// loadYAMLFile unmarshals the file at path into target. Returns (true, nil)
// if the file was found and parsed, (false, nil) if it does not exist, or
// (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}

	return true, nil
}
