package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NewProgress returns a Progress writing to w. Headless managers and
// NoColor themes get plain log lines instead of animations.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return newProgressImpl(theme, hm, w)
}

type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

func newProgressImpl(theme *Theme, hm *HeadlessManager, w io.Writer) *progressImpl {
	if theme == nil {
		theme = NewTheme()
	}
	if hm == nil {
		hm = NewHeadlessManager()
	}
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

func (p *progressImpl) plain() bool {
	return p.headless.IsHeadless() || p.theme.NoColor
}

func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.plain() {
		return &lineProgressBar{title: title, total: total, writer: p.writer}
	}
	return (*interactiveProgressBar)(startProgram(newProgressModel(p.theme, title, total), p.writer))
}

func (p *progressImpl) Spinner(title string) Spinner {
	if p.plain() {
		_, _ = fmt.Fprintln(p.writer, title)
		return &lineSpinner{title: title, writer: p.writer}
	}
	return (*interactiveSpinner)(startProgram(newSpinnerModel(p.theme, title), p.writer))
}

// teaHandle is the program owner shared by the animated indicators.
type teaHandle struct {
	program *tea.Program
	once    sync.Once
}

// finish sends msg once and waits for the program to exit.
func (h *teaHandle) finish(msg tea.Msg) {
	h.once.Do(func() {
		h.program.Send(msg)
		h.program.Wait()
	})
}

// startProgram runs m on its own goroutine with input detached, so the
// indicator never competes with prompts for stdin.
func startProgram(m tea.Model, w io.Writer) *teaHandle {
	p := tea.NewProgram(m, tea.WithInput(nil), tea.WithOutput(w))
	go func() {
		_, _ = p.Run()
	}()
	return &teaHandle{program: p}
}

type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner animates until Stop. Stop is idempotent.
type interactiveSpinner teaHandle

func (s *interactiveSpinner) Stop() {
	(*teaHandle)(s).finish(spinnerStopMsg{})
}

type (
	progressIncrMsg  int
	progressTitleMsg string
	progressDoneMsg  struct{}
)

type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	opt := progress.WithDefaultGradient()
	if !theme.NoColor {
		opt = progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary)
	}
	return progressModel{bar: progress.New(opt, progress.WithWidth(40)), title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = min(m.current+int(msg), m.total)
	case progressTitleMsg:
		m.title = string(msg)
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return fmt.Sprintf("%s [%d/%d] %s\n", m.bar.ViewAs(pct), m.current, m.total, m.title)
}

// interactiveProgressBar animates file emission. Done is idempotent.
type interactiveProgressBar teaHandle

func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

func (b *interactiveProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

func (b *interactiveProgressBar) Done() {
	(*teaHandle)(b).finish(progressDoneMsg{})
}

// lineProgressBar prints "[current/total] title" on every increment.
type lineProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func (b *lineProgressBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	b.print()
}

func (b *lineProgressBar) SetTitle(title string) {
	b.title = title
}

// Done prints nothing when the last increment already reached the total.
func (b *lineProgressBar) Done() {
	if b.current == b.total {
		return
	}
	b.current = b.total
	b.print()
}

func (b *lineProgressBar) print() {
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

type lineSpinner struct {
	title   string
	writer  io.Writer
	stopped bool
}

func (s *lineSpinner) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	_, _ = fmt.Fprintf(s.writer, "%s: done\n", s.title)
}
