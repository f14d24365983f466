package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/haywan-uz/haywan-frontend/internal/ui"
)

// Asker presents one question and returns the answer. The question passed
// in is already resolved: computed options are filled in and select
// defaults are valid choices.
type Asker interface {
	Ask(q Question, result *WizardResult) (Answer, error)
}

// HeadlessAsker answers every question with its default.
type HeadlessAsker struct{}

// Ask returns the default answer.
func (HeadlessAsker) Ask(q Question, _ *WizardResult) (Answer, error) {
	return Answer{Text: q.Default.Text, Yes: q.Default.Yes, List: slices.Clone(q.Default.List)}, nil
}

// huhAsker runs each question as its own huh.Form. Separate forms avoid the
// huh v0.8.x YOffset scroll bug seen when several groups share one viewport.
type huhAsker struct {
	theme *huh.Theme
}

// NewHuhAsker returns an interactive Asker using the haywan form theme.
func NewHuhAsker(theme *ui.Theme) Asker {
	return &huhAsker{theme: newFormTheme(theme)}
}

func (h *huhAsker) Ask(q Question, _ *WizardResult) (Answer, error) {
	var (
		answer Answer
		field  huh.Field
	)

	switch q.Type {
	case QuestionTypeInput:
		answer.Text = q.Default.Text
		inp := huh.NewInput().
			Title(q.Title).
			Description(q.Description).
			Value(&answer.Text).
			Validate(func(val string) error {
				return validateAnswer(&q, Answer{Text: inputValue(val, q.Default.Text)})
			})
		if q.Default.Text != "" {
			inp = inp.Placeholder(q.Default.Text)
		}
		field = inp

	case QuestionTypeConfirm:
		answer.Yes = q.Default.Yes
		field = huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&answer.Yes)

	case QuestionTypeSelect:
		// Default option goes first; huh v0.8.0 scrolls the viewport to the
		// initially selected index and hides options above it.
		answer.Text = q.Default.Text
		field = huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(huhOptions(defaultFirst(q.Options, q.Default.Text), nil)...).
			Value(&answer.Text).
			Validate(func(val string) error {
				return validateAnswer(&q, Answer{Text: val})
			})

	case QuestionTypeMultiSelect:
		answer.List = slices.Clone(q.Default.List)
		field = huh.NewMultiSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(huhOptions(q.Options, q.Default.List)...).
			Value(&answer.List).
			Validate(func(vals []string) error {
				return validateAnswer(&q, Answer{List: vals})
			})

	default:
		return Answer{}, fmt.Errorf("%w: %s has unknown type %d", ErrInvalidQuestion, q.ID, q.Type)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(h.theme).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Answer{}, ErrCancelled
		}
		return Answer{}, fmt.Errorf("wizard error: %w", err)
	}

	if q.Type == QuestionTypeInput {
		answer.Text = inputValue(answer.Text, q.Default.Text)
	}
	return answer, nil
}

// inputValue falls back to the default when nothing was typed. Other input
// is kept as typed so validators see leading and trailing spaces.
func inputValue(typed, def string) string {
	if strings.TrimSpace(typed) == "" {
		return def
	}
	return typed
}

func defaultFirst(opts []Option, def string) []Option {
	i := slices.IndexFunc(opts, func(o Option) bool { return o.Value == def })
	if i <= 0 {
		return opts
	}
	out := make([]Option, 0, len(opts))
	out = append(out, opts[i])
	out = append(out, opts[:i]...)
	return append(out, opts[i+1:]...)
}

func huhOptions(opts []Option, selected []string) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		key := o.Label
		if o.Desc != "" {
			key = o.Label + " - " + o.Desc
		}
		out[i] = huh.NewOption(key, o.Value).Selected(slices.Contains(selected, o.Value))
	}
	return out
}

// newFormTheme maps the haywan palette onto a huh theme.
func newFormTheme(theme *ui.Theme) *huh.Theme {
	if theme == nil {
		theme = ui.NewTheme()
	}
	if theme.NoColor {
		return huh.ThemeBase()
	}

	c := theme.Colors
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#0369A1", Dark: c.Primary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: c.Secondary}
	green := lipgloss.AdaptiveColor{Light: "#15803D", Dark: c.Success}
	red := lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: c.Error}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: c.Muted}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}
