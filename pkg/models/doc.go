// Package models provides the configuration records shared by the
// haywan scaffolding pipeline.
//
// Every record is built once per run and treated as read-only afterwards.
//
// # Framework Options
//
// [FrameworkOptions] holds the create-next-app toggles. The import alias is
// only passed to the generator when it differs from [DefaultImportAlias]:
//
//	opts := models.DefaultFrameworkOptions()
//	opts.ImportAlias = "~/*"
//
// # Localization
//
// [LocalizationOptions] must be created with [NewLocalizationOptions], which
// enforces that the default locale is one of the configured locales:
//
//	intl, err := models.NewLocalizationOptions([]string{"uz", "en"}, "uz", true)
//
// # UI Library
//
// [UILibraryOptions] holds component names drawn from [ComponentCatalog].
package models
