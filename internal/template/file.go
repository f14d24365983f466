package template

import (
	"path"
	"strings"

	"github.com/haywan-uz/haywan-frontend/internal/defs"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// GeneratedFile is a file produced in memory and written by an Emitter.
type GeneratedFile struct {
	// Path is slash-separated and relative to the project root.
	Path    string
	Content []byte
}

// ProjectLayout describes the scaffolded project the generated files target.
type ProjectLayout struct {
	// Name is the project name, used as the page title.
	Name string

	TypeScript bool
	SrcDir     bool
	AppRouter  bool

	// ImportAlias is the tsconfig path alias such as "@/*".
	ImportAlias string

	// NextConfig is the existing framework config file name, empty when none.
	NextConfig string
}

// SourceRoot returns the directory holding app, pages and i18n ("" or "src").
func (l ProjectLayout) SourceRoot() string {
	if l.SrcDir {
		return defs.SrcDir
	}
	return ""
}

// sourcePath joins elem under the source root.
func (l ProjectLayout) sourcePath(elem ...string) string {
	return path.Join(append([]string{l.SourceRoot()}, elem...)...)
}

// scriptExt is the extension for plain modules (i18n, middleware).
func (l ProjectLayout) scriptExt() string {
	if l.TypeScript {
		return ".ts"
	}
	return ".js"
}

// componentExt is the extension for React components.
func (l ProjectLayout) componentExt() string {
	if l.TypeScript {
		return ".tsx"
	}
	return ".jsx"
}

// configFile returns the framework config file to write, keeping the name of
// an existing one.
func (l ProjectLayout) configFile() string {
	if l.NextConfig != "" {
		return l.NextConfig
	}
	if l.TypeScript {
		return "next.config.ts"
	}
	return "next.config.mjs"
}

// aliasPrefix turns "@/*" into "@/".
func (l ProjectLayout) aliasPrefix() string {
	prefix := strings.TrimSuffix(l.ImportAlias, "*")
	if prefix == "" {
		prefix = strings.TrimSuffix(models.DefaultImportAlias, "*")
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
