package models

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LocalizationOptions configures next-intl for a new project.
// Create values with NewLocalizationOptions so the invariants hold.
type LocalizationOptions struct {
	Locales       []string `json:"locales"`
	DefaultLocale string   `json:"default_locale"`
	LocaleRouting bool     `json:"locale_routing"`
}

// NewLocalizationOptions validates and normalizes localization settings.
// Codes are trimmed and de-duplicated keeping the first occurrence. An empty
// default falls back to the first locale; any other default must be listed.
func NewLocalizationOptions(locales []string, defaultLocale string, localeRouting bool) (*LocalizationOptions, error) {
	seen := make(map[string]bool, len(locales))
	normalized := make([]string, 0, len(locales))
	for _, l := range locales {
		code := strings.TrimSpace(l)
		if code == "" || seen[code] {
			continue
		}
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, code)
		}
		seen[code] = true
		normalized = append(normalized, code)
	}
	if len(normalized) == 0 {
		return nil, ErrNoLocales
	}

	def := strings.TrimSpace(defaultLocale)
	if def == "" {
		def = normalized[0]
	}
	if !slices.Contains(normalized, def) {
		return nil, fmt.Errorf("%w: %q not in %v", ErrDefaultLocaleNotFound, def, normalized)
	}

	return &LocalizationOptions{
		Locales:       normalized,
		DefaultLocale: def,
		LocaleRouting: localeRouting,
	}, nil
}

// CommonLocales lists the locale codes offered by the wizard.
// uz, en and ru ship with built-in translations.
var CommonLocales = []string{"uz", "en", "ru", "kk", "tr", "de", "fr", "es", "ar", "zh", "ja", "ko"}

// LocaleName returns a display label such as "Uzbek (o‘zbek)" for a code.
// Codes that cannot be parsed are returned unchanged.
func LocaleName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	english := display.English.Tags().Name(tag)
	self := display.Self.Name(tag)
	switch {
	case english == "":
		return code
	case self == "" || self == english:
		return english
	default:
		return english + " (" + self + ")"
	}
}
