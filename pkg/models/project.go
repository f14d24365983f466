package models

import (
	"fmt"
	"strings"
)

// DefaultImportAlias is the import alias create-next-app uses when none is given.
const DefaultImportAlias = "@/*"

// FrameworkOptions holds the create-next-app choices for a new project.
type FrameworkOptions struct {
	TypeScript  bool   `yaml:"typescript" json:"typescript"`
	ESLint      bool   `yaml:"eslint" json:"eslint"`
	Tailwind    bool   `yaml:"tailwind" json:"tailwind"`
	SrcDir      bool   `yaml:"src_dir" json:"src_dir"`
	AppRouter   bool   `yaml:"app_router" json:"app_router"`
	Turbopack   bool   `yaml:"turbopack" json:"turbopack"`
	ImportAlias string `yaml:"import_alias" json:"import_alias"`

	// Intl is nil when localization was not requested.
	Intl *LocalizationOptions `yaml:"-" json:"intl,omitempty"`
}

// DefaultFrameworkOptions returns the recommended create-next-app choices.
func DefaultFrameworkOptions() FrameworkOptions {
	return FrameworkOptions{
		TypeScript:  true,
		ESLint:      true,
		Tailwind:    true,
		SrcDir:      true,
		AppRouter:   true,
		Turbopack:   false,
		ImportAlias: DefaultImportAlias,
	}
}

// ProjectConfig is the complete configuration for one scaffolding run.
type ProjectConfig struct {
	Name      string           `json:"name"`
	Framework FrameworkOptions `json:"framework"`

	// UI is nil when the UI library was not requested.
	UI *UILibraryOptions `json:"ui,omitempty"`
}

// WantsIntl reports whether the localization step should run.
func (c *ProjectConfig) WantsIntl() bool {
	return c != nil && c.Framework.Intl != nil
}

// WantsUI reports whether the UI library step should run.
func (c *ProjectConfig) WantsUI() bool {
	return c != nil && c.UI != nil
}

// ValidateImportAlias checks the "<prefix>/*" shape create-next-app accepts,
// such as "@/*" or "~/*".
func ValidateImportAlias(alias string) error {
	prefix, ok := strings.CutSuffix(alias, "/*")
	if !ok || prefix == "" || strings.ContainsAny(prefix, "*\" \t") {
		return fmt.Errorf("%w: %q (expected a pattern like %q)", ErrInvalidImportAlias, alias, DefaultImportAlias)
	}
	return nil
}
