package models

import "errors"

// Sentinel errors for configuration record construction.
var (
	// ErrNoLocales indicates localization was requested without any locale.
	ErrNoLocales = errors.New("at least one locale is required")

	// ErrInvalidLocale indicates a locale code that is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale code")

	// ErrDefaultLocaleNotFound indicates the default locale is not one of the configured locales.
	ErrDefaultLocaleNotFound = errors.New("default locale is not in the locale list")

	// ErrInvalidImportAlias indicates an import alias create-next-app would reject.
	ErrInvalidImportAlias = errors.New("invalid import alias")

	// ErrUnknownComponent indicates a UI component that is not in the catalog.
	ErrUnknownComponent = errors.New("unknown UI component")
)
