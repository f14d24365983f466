package project

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ProgressReporter receives pipeline step events.
type ProgressReporter interface {
	StepStart(name, message string)
	StepUpdate(message string)
	StepComplete(message string)
	StepSkip(name, reason string)
	StepWarn(message string)
	StepError(err error)
}

// NoOpReporter discards every event.
type NoOpReporter struct{}

func (NoOpReporter) StepStart(string, string) {}
func (NoOpReporter) StepUpdate(string)        {}
func (NoOpReporter) StepComplete(string)      {}
func (NoOpReporter) StepSkip(string, string)  {}
func (NoOpReporter) StepWarn(string)          {}
func (NoOpReporter) StepError(error)          {}

var (
	reporterTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0EA5E9"))
	reporterSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	reporterWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	reporterError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	reporterMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// ConsoleReporter prints one line per event.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to w, or os.Stdout
// when w is nil.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleReporter{out: w}
}

func (r *ConsoleReporter) StepStart(name, message string) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", reporterTitle.Render("▸ "+name), message)
}

func (r *ConsoleReporter) StepUpdate(message string) {
	_, _ = fmt.Fprintf(r.out, "  %s\n", reporterMuted.Render(message))
}

func (r *ConsoleReporter) StepComplete(message string) {
	_, _ = fmt.Fprintf(r.out, "  %s %s\n", reporterSuccess.Render("✓"), message)
}

func (r *ConsoleReporter) StepSkip(name, reason string) {
	_, _ = fmt.Fprintf(r.out, "%s\n", reporterMuted.Render("- "+name+" skipped: "+reason))
}

func (r *ConsoleReporter) StepWarn(message string) {
	_, _ = fmt.Fprintf(r.out, "  %s %s\n", reporterWarn.Render("!"), message)
}

func (r *ConsoleReporter) StepError(err error) {
	_, _ = fmt.Fprintf(r.out, "  %s %v\n", reporterError.Render("✗"), err)
}
