package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/haywan-uz/haywan-frontend/internal/cli/wizard"
	"github.com/haywan-uz/haywan-frontend/internal/core/project"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	cancelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// ReportError prints err to w and returns the process exit code.
// Cancellation is a normal way out and exits 0.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}

	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(w, cancelStyle.Render("Project creation cancelled."))
		return ExitOK
	}

	_, _ = fmt.Fprintln(w, errorStyle.Render("✖ An error occurred:"))

	var stepErr *project.StepError
	if errors.As(err, &stepErr) {
		_, _ = fmt.Fprintf(w, "  step:  %s\n", stepErr.Step)
		_, _ = fmt.Fprintf(w, "  error: %v\n", stepErr.Err)
		_, _ = fmt.Fprintln(w, hintStyle.Render("  Files created so far were left in place."))
		return ExitFailure
	}

	_, _ = fmt.Fprintf(w, "  %v\n", err)
	return ExitFailure
}
