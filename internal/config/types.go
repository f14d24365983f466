package config

import (
	"log/slog"
	"strings"

	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// Config is the user configuration file.
type Config struct {
	// ProjectName is the default project name. In headless mode it is the
	// name used.
	ProjectName    string          `yaml:"project_name"`
	PackageRunner  string          `yaml:"package_runner"`
	PackageManager string          `yaml:"package_manager"`
	LogLevel       string          `yaml:"log_level"`
	Framework      FrameworkConfig `yaml:"framework"`
	Intl           IntlConfig      `yaml:"intl"`
	UI             UIConfig        `yaml:"ui"`
}

// FrameworkConfig holds create-next-app defaults.
type FrameworkConfig struct {
	TypeScript  bool   `yaml:"typescript"`
	ESLint      bool   `yaml:"eslint"`
	Tailwind    bool   `yaml:"tailwind"`
	SrcDir      bool   `yaml:"src_dir"`
	AppRouter   bool   `yaml:"app_router"`
	Turbopack   bool   `yaml:"turbopack"`
	ImportAlias string `yaml:"import_alias"`
}

// IntlConfig holds next-intl defaults.
type IntlConfig struct {
	Enabled       bool     `yaml:"enabled"`
	Locales       []string `yaml:"locales"`
	DefaultLocale string   `yaml:"default_locale"`
	LocaleRouting bool     `yaml:"locale_routing"`
}

// UIConfig holds shadcn/ui defaults.
type UIConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Components []string `yaml:"components"`
}

// FrameworkOptions converts the framework section into model options.
func (c *Config) FrameworkOptions() models.FrameworkOptions {
	return models.FrameworkOptions{
		TypeScript:  c.Framework.TypeScript,
		ESLint:      c.Framework.ESLint,
		Tailwind:    c.Framework.Tailwind,
		SrcDir:      c.Framework.SrcDir,
		AppRouter:   c.Framework.AppRouter,
		Turbopack:   c.Framework.Turbopack,
		ImportAlias: c.Framework.ImportAlias,
	}
}

// LocalizationOptions converts the intl section, returning nil when
// localization is disabled.
func (c *Config) LocalizationOptions() (*models.LocalizationOptions, error) {
	if !c.Intl.Enabled {
		return nil, nil
	}
	return models.NewLocalizationOptions(c.Intl.Locales, c.Intl.DefaultLocale, c.Intl.LocaleRouting)
}

// UIOptions converts the ui section, returning nil when the UI library is
// disabled.
func (c *Config) UIOptions() (*models.UILibraryOptions, error) {
	if !c.UI.Enabled {
		return nil, nil
	}
	return models.NewUILibraryOptions(c.UI.Components)
}

// ProjectConfig assembles the full project configuration from the file
// values alone, as used in headless mode.
func (c *Config) ProjectConfig() (*models.ProjectConfig, error) {
	framework := c.FrameworkOptions()

	intl, err := c.LocalizationOptions()
	if err != nil {
		return nil, err
	}
	framework.Intl = intl

	ui, err := c.UIOptions()
	if err != nil {
		return nil, err
	}

	return &models.ProjectConfig{Name: c.ProjectName, Framework: framework, UI: ui}, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
