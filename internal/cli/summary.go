package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/haywan-uz/haywan-frontend/internal/core/project"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// summaryMarkdown builds the closing message shown after a successful run.
func summaryMarkdown(cfg *models.ProjectConfig, res *project.Result, manager string) string {
	if manager == "" {
		manager = project.DefaultPackageManager
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# ✨ %s is ready\n\n", cfg.Name)

	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "```sh\ncd %s && %s run dev\n```\n\n", cfg.Name, manager)

	if cfg.WantsIntl() {
		intl := cfg.Framework.Intl
		fmt.Fprintf(&b, "Localization: **%s** (default `%s`)\n\n", strings.Join(intl.Locales, ", "), intl.DefaultLocale)
	}
	if cfg.WantsUI() && len(cfg.UI.Components) > 0 {
		fmt.Fprintf(&b, "Components: %s\n\n", strings.Join(cfg.UI.Components, ", "))
	}

	if res != nil && len(res.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// PrintSummary renders the closing message with glamour. Rendering
// problems fall back to the raw markdown.
func PrintSummary(w io.Writer, cfg *models.ProjectConfig, res *project.Result, manager string, plain bool) error {
	md := summaryMarkdown(cfg, res, manager)
	if plain {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		var out string
		if out, err = renderer.Render(md); err == nil {
			md = out
		}
	}
	_, werr := io.WriteString(w, md)
	return werr
}
