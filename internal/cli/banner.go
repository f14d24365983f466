package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/haywan-uz/haywan-frontend/internal/ui"
)

// SupportLine is printed under the banner.
const SupportLine = "Built by https://haywan.uz, support: https://haywan.uz/blog/support"

var bannerArt = []string{
	` _   _            __        __`,
	`| | | | __ _ _   _\ \      / /_ _ _ __`,
	`| |_| |/ _` + "`" + ` | | | |\ \ /\ / / _` + "`" + ` | '_ \`,
	`|  _  | (_| | |_| | \ V  V / (_| | | | |`,
	`|_| |_|\__,_|\__, |  \_/\_/ \__,_|_| |_|`,
	`             |___/   F R O N T E N D`,
}

// PrintBanner writes the gradient title and the support line.
func PrintBanner(w io.Writer, theme *ui.Theme) {
	_, _ = fmt.Fprintln(w, renderBanner(theme))
	_, _ = fmt.Fprintln(w, lipgloss.NewStyle().Faint(true).Render(SupportLine))
	_, _ = fmt.Fprintln(w)
}

// renderBanner colours each line of the title along a gradient from the
// primary to the secondary brand colour.
func renderBanner(theme *ui.Theme) string {
	if theme == nil {
		theme = ui.NewTheme()
	}
	if theme.NoColor {
		return strings.Join(bannerArt, "\n")
	}

	stops := gradient(theme.Colors.Primary, theme.Colors.Secondary, len(bannerArt))
	lines := make([]string, len(bannerArt))
	for i, line := range bannerArt {
		lines[i] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(stops[i])).Render(line)
	}
	return strings.Join(lines, "\n")
}

// gradient returns n hex colours blended from a to b. Unparsable colours
// fall back to a flat a.
func gradient(a, b string, n int) []string {
	out := make([]string, n)
	from, errA := colorful.Hex(a)
	to, errB := colorful.Hex(b)
	for i := range out {
		if errA != nil || errB != nil || n == 1 {
			out[i] = a
			continue
		}
		t := float64(i) / float64(n-1)
		out[i] = from.BlendLuv(to, t).Clamped().Hex()
	}
	return out
}
