package template

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/haywan-uz/haywan-frontend/internal/defs"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// intlData is the template context for every next-intl template.
type intlData struct {
	Title            string
	Locales          []string
	DefaultLocale    string
	LocaleRouting    bool
	TypeScript       bool
	TypeScriptConfig bool
	PagesRouter      bool
	AliasPrefix      string
	LocalesImport    string
	RequestsPath     string
	ConfigModule     string
}

// intlFile maps a template to the project path it renders to.
type intlFile struct {
	template string
	path     string
}

// GenerateIntlFiles renders the next-intl support files for a project.
// The result is deterministic for equal inputs and touches no filesystem.
func GenerateIntlFiles(opts models.LocalizationOptions, layout ProjectLayout) ([]GeneratedFile, error) {
	if len(opts.Locales) == 0 {
		return nil, models.ErrNoLocales
	}

	tmplFS, err := EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return generateIntlFiles(NewRenderer(tmplFS), opts, layout)
}

func generateIntlFiles(r Renderer, opts models.LocalizationOptions, layout ProjectLayout) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(opts.Locales)+8)

	for _, code := range opts.Locales {
		doc, err := LocaleDocument(code)
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{
			Path:    path.Join(defs.LocalesDir, code+".json"),
			Content: doc,
		})
	}

	data := newIntlData(opts, layout)
	for _, f := range intlFileSet(opts, layout) {
		content, err := r.Render(path.Join("intl", f.template), data)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f.path, err)
		}
		if !bytes.HasSuffix(content, []byte("\n")) {
			content = append(content, '\n')
		}
		files = append(files, GeneratedFile{Path: f.path, Content: content})
	}

	return files, nil
}

// intlFileSet selects the templates for the router and routing style.
func intlFileSet(opts models.LocalizationOptions, layout ProjectLayout) []intlFile {
	script := layout.scriptExt()
	component := layout.componentExt()

	set := []intlFile{
		{"routing.tmpl", layout.sourcePath(defs.I18nDir, "routing"+script)},
		{"requests.tmpl", layout.sourcePath(defs.I18nDir, "requests"+script)},
	}

	switch {
	case !layout.AppRouter:
		set = append(set,
			intlFile{"pages_app.tmpl", layout.sourcePath("pages", "_app"+component)},
			intlFile{"pages_index.tmpl", layout.sourcePath("pages", "index"+component)},
		)
	case opts.LocaleRouting:
		set = append(set,
			intlFile{"middleware.tmpl", layout.sourcePath("middleware" + script)},
			intlFile{"locale_layout.tmpl", layout.sourcePath("app", "[locale]", "layout"+component)},
			intlFile{"page.tmpl", layout.sourcePath("app", "[locale]", "page"+component)},
			intlFile{"root_layout.tmpl", layout.sourcePath("app", "layout"+component)},
			intlFile{"root_page.tmpl", layout.sourcePath("app", "page"+component)},
		)
	default:
		set = append(set,
			intlFile{"app_layout.tmpl", layout.sourcePath("app", "layout"+component)},
			intlFile{"page.tmpl", layout.sourcePath("app", "page"+component)},
		)
	}

	return append(set, intlFile{"next_config.tmpl", layout.configFile()})
}

func newIntlData(opts models.LocalizationOptions, layout ProjectLayout) intlData {
	configFile := layout.configFile()
	module := "esm"
	if strings.HasSuffix(configFile, ".js") {
		module = "cjs"
	}

	// i18n and pages sit one level below the source root; locales sit at the project root.
	localesImport := "../" + defs.LocalesDir
	if layout.SrcDir {
		localesImport = "../../" + defs.LocalesDir
	}

	title := layout.Name
	if title == "" {
		title = defs.AppName
	}

	return intlData{
		Title:            title,
		Locales:          opts.Locales,
		DefaultLocale:    opts.DefaultLocale,
		LocaleRouting:    opts.LocaleRouting,
		TypeScript:       layout.TypeScript,
		TypeScriptConfig: strings.HasSuffix(configFile, ".ts"),
		PagesRouter:      !layout.AppRouter,
		AliasPrefix:      layout.aliasPrefix(),
		LocalesImport:    localesImport,
		RequestsPath:     "./" + layout.sourcePath(defs.I18nDir, "requests"+layout.scriptExt()),
		ConfigModule:     module,
	}
}
