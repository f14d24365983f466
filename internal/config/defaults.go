package config

import (
	"slices"

	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// Default value constants.
const (
	DefaultProjectName    = "haywan-app"
	DefaultPackageRunner  = "npx"
	DefaultPackageManager = "npm"
	DefaultLogLevel       = "info"
	DefaultDefaultLocale  = "uz"
)

// DefaultLocales are the locales offered pre-selected by the wizard.
var DefaultLocales = []string{"uz", "en", "ru"}

// NewDefaultConfig returns a Config with every field set to its default.
func NewDefaultConfig() *Config {
	fw := models.DefaultFrameworkOptions()
	return &Config{
		ProjectName:    DefaultProjectName,
		PackageRunner:  DefaultPackageRunner,
		PackageManager: DefaultPackageManager,
		LogLevel:       DefaultLogLevel,
		Framework: FrameworkConfig{
			TypeScript:  fw.TypeScript,
			ESLint:      fw.ESLint,
			Tailwind:    fw.Tailwind,
			SrcDir:      fw.SrcDir,
			AppRouter:   fw.AppRouter,
			Turbopack:   fw.Turbopack,
			ImportAlias: fw.ImportAlias,
		},
		Intl: IntlConfig{
			Enabled:       true,
			Locales:       slices.Clone(DefaultLocales),
			DefaultLocale: DefaultDefaultLocale,
			LocaleRouting: true,
		},
		UI: UIConfig{
			Enabled:    true,
			Components: []string{},
		},
	}
}

// applyDefaults fills empty scalar fields left blank by the file.
func applyDefaults(cfg *Config) {
	if cfg.PackageRunner == "" {
		cfg.PackageRunner = DefaultPackageRunner
	}
	if cfg.PackageManager == "" {
		cfg.PackageManager = DefaultPackageManager
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Framework.ImportAlias == "" {
		cfg.Framework.ImportAlias = models.DefaultImportAlias
	}
	if cfg.Intl.Locales == nil {
		cfg.Intl.Locales = slices.Clone(DefaultLocales)
	}
	if cfg.UI.Components == nil {
		cfg.UI.Components = []string{}
	}
}
