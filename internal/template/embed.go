package template

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

// EmbeddedTemplates returns the template tree rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedTemplates, "templates")
}
