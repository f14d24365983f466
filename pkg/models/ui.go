package models

import (
	"fmt"
	"slices"
	"strings"
)

// ComponentCatalog lists the shadcn/ui components offered by the wizard,
// in display order. Values are the names passed to "shadcn add".
var ComponentCatalog = []Component{
	{Name: "button", Title: "Button"},
	{Name: "input", Title: "Input"},
	{Name: "card", Title: "Card"},
	{Name: "dropdown-menu", Title: "Dropdown"},
	{Name: "alert", Title: "Alert"},
	{Name: "avatar", Title: "Avatar"},
	{Name: "badge", Title: "Badge"},
	{Name: "checkbox", Title: "Checkbox"},
	{Name: "dialog", Title: "Dialog"},
	{Name: "form", Title: "Form"},
	{Name: "label", Title: "Label"},
	{Name: "select", Title: "Select"},
	{Name: "table", Title: "Table"},
	{Name: "tooltip", Title: "Tooltip"},
}

// Component is a catalog entry.
type Component struct {
	Name  string
	Title string
}

// IsCatalogComponent reports whether name is in ComponentCatalog.
func IsCatalogComponent(name string) bool {
	return slices.ContainsFunc(ComponentCatalog, func(c Component) bool {
		return c.Name == name
	})
}

// UILibraryOptions configures the shadcn/ui step.
type UILibraryOptions struct {
	Components []string `json:"components"`
}

// NewUILibraryOptions validates component names against the catalog and
// removes duplicates while keeping the selection order.
func NewUILibraryOptions(components []string) (*UILibraryOptions, error) {
	seen := make(map[string]bool, len(components))
	out := make([]string, 0, len(components))
	for _, c := range components {
		name := strings.TrimSpace(c)
		if name == "" || seen[name] {
			continue
		}
		if !IsCatalogComponent(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
		}
		seen[name] = true
		out = append(out, name)
	}
	return &UILibraryOptions{Components: out}, nil
}

// ComponentNames returns the catalog names in display order.
func ComponentNames() []string {
	names := make([]string, len(ComponentCatalog))
	for i, c := range ComponentCatalog {
		names[i] = c.Name
	}
	return names
}
