package ui

import "os"

// Colors holds the brand palette as hex strings.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme controls how UI components render.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// DefaultColors is the haywan palette.
var DefaultColors = Colors{
	Primary:   "#0EA5E9",
	Secondary: "#8B5CF6",
	Success:   "#22C55E",
	Warning:   "#F59E0B",
	Error:     "#EF4444",
	Muted:     "#6B7280",
}

// NewTheme returns the default theme. Color is disabled when NO_COLOR is set.
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{Colors: DefaultColors, NoColor: noColor}
}
