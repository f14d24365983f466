package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks the configuration and returns *ValidationErrors listing
// every problem found.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateExecutables(cfg)...)
	errs = append(errs, validateLogLevel(cfg.LogLevel)...)
	errs = append(errs, validateImportAlias(cfg.Framework.ImportAlias)...)
	errs = append(errs, validateIntl(&cfg.Intl)...)
	errs = append(errs, validateUI(&cfg.UI)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateExecutables requires single-word runner and manager names.
func validateExecutables(cfg *Config) []ValidationError {
	var errs []ValidationError
	for field, value := range map[string]string{
		"package_runner":  cfg.PackageRunner,
		"package_manager": cfg.PackageManager,
	} {
		if value == "" || strings.ContainsAny(value, " \t\n;&|") {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must be a single executable name such as npx, pnpm or bunx",
				Value:   value,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	slices.SortFunc(errs, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })
	return errs
}

func validateLogLevel(level string) []ValidationError {
	if slices.Contains(validLogLevels, strings.ToLower(level)) {
		return nil
	}
	return []ValidationError{{
		Field:   "log_level",
		Message: "must be one of: debug, info, warn, error",
		Value:   level,
		Wrapped: ErrInvalidLogLevel,
	}}
}

// validateImportAlias requires the "<prefix>/*" shape create-next-app accepts.
func validateImportAlias(alias string) []ValidationError {
	if err := models.ValidateImportAlias(alias); err != nil {
		return []ValidationError{{
			Field:   "framework.import_alias",
			Message: err.Error(),
			Value:   alias,
			Wrapped: ErrInvalidConfig,
		}}
	}
	return nil
}

func validateIntl(intl *IntlConfig) []ValidationError {
	if !intl.Enabled {
		return nil
	}
	if _, err := models.NewLocalizationOptions(intl.Locales, intl.DefaultLocale, intl.LocaleRouting); err != nil {
		return []ValidationError{{
			Field:   "intl",
			Message: err.Error(),
			Wrapped: ErrInvalidConfig,
		}}
	}
	return nil
}

func validateUI(ui *UIConfig) []ValidationError {
	var errs []ValidationError
	for _, c := range ui.Components {
		if !models.IsCatalogComponent(c) {
			errs = append(errs, ValidationError{
				Field:   "ui.components",
				Message: fmt.Sprintf("unknown component; available: %s", strings.Join(models.ComponentNames(), ", ")),
				Value:   c,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}
