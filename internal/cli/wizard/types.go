// Package wizard collects the project configuration through a sequence of
// prompts. Questions are plain descriptors; an Asker decides how each one is
// presented (an interactive huh form, or its default in headless mode).
package wizard

import (
	"errors"
	"slices"
)

// Errors returned by the wizard.
var (
	// ErrCancelled indicates the user aborted a prompt.
	ErrCancelled = errors.New("wizard cancelled by user")

	// ErrNoQuestions indicates a section has nothing to ask.
	ErrNoQuestions = errors.New("no questions provided")

	// ErrInvalidQuestion indicates a malformed question descriptor.
	ErrInvalidQuestion = errors.New("invalid question")
)

// QuestionType represents the type of question.
type QuestionType int

const (
	// QuestionTypeInput is a free-text question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
	// QuestionTypeSelect is a single-choice question.
	QuestionTypeSelect
	// QuestionTypeMultiSelect is a multiple-choice question.
	QuestionTypeMultiSelect
)

// Section groups the questions feeding one part of the project config.
type Section string

// Question sections, in the order Collect asks them.
const (
	SectionProject   Section = "project"
	SectionFramework Section = "framework"
	SectionIntl      Section = "intl"
	SectionUI        Section = "ui"
)

// Question IDs.
const (
	IDProjectName   = "project_name"
	IDTypeScript    = "typescript"
	IDESLint        = "eslint"
	IDTailwind      = "tailwind"
	IDSrcDir        = "src_dir"
	IDAppRouter     = "app_router"
	IDTurbopack     = "turbopack"
	IDImportAlias   = "import_alias"
	IDIntl          = "intl"
	IDLocales       = "locales"
	IDDefaultLocale = "default_locale"
	IDLocaleRouting = "locale_routing"
	IDUI            = "ui"
	IDComponents    = "components"
	IDConfirmUI     = "confirm_ui"
)

// Option is one choice of a select or multi-select question.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Answer holds a typed answer. Which field is meaningful depends on the
// question type: Text for Input and Select, Yes for Confirm, List for
// MultiSelect.
type Answer struct {
	Text string
	Yes  bool
	List []string
}

// Question describes a single prompt.
type Question struct {
	ID          string
	Section     Section
	Type        QuestionType
	Title       string
	Description string

	// Options are the static choices. OptionsFunc, when set, replaces them
	// with choices computed from earlier answers.
	Options     []Option
	OptionsFunc func(*WizardResult) []Option

	Default  Answer
	Required bool

	// Validate runs on the answer before it is stored. A non-nil error
	// re-prompts in interactive mode.
	Validate func(Answer) error

	// Condition, when set, must hold for the question to be asked.
	Condition func(*WizardResult) bool
}

// Visible reports whether the question should be asked given earlier answers.
func (q *Question) Visible(result *WizardResult) bool {
	return q.Condition == nil || q.Condition(result)
}

// resolve returns a copy with computed options applied and a select default
// that is guaranteed to be one of the options.
func (q *Question) resolve(result *WizardResult) Question {
	r := *q
	if q.OptionsFunc != nil {
		r.Options = q.OptionsFunc(result)
	}

	switch r.Type {
	case QuestionTypeSelect:
		if len(r.Options) > 0 && !r.hasOption(r.Default.Text) {
			r.Default.Text = r.Options[0].Value
		}
	case QuestionTypeMultiSelect:
		if len(r.Options) > 0 {
			r.Default.List = slices.DeleteFunc(slices.Clone(r.Default.List), func(v string) bool {
				return !r.hasOption(v)
			})
		}
	}
	return r
}

func (q *Question) hasOption(value string) bool {
	return slices.ContainsFunc(q.Options, func(o Option) bool { return o.Value == value })
}

// WizardResult holds the answers collected so far. It starts out filled with
// the configured defaults so conditions always see a value.
type WizardResult struct {
	ProjectName string

	TypeScript  bool
	ESLint      bool
	Tailwind    bool
	SrcDir      bool
	AppRouter   bool
	Turbopack   bool
	ImportAlias string

	Intl          bool
	Locales       []string
	DefaultLocale string
	LocaleRouting bool

	UI         bool
	Components []string
	ConfirmUI  bool
}

// apply stores an answer under the question's ID.
func (r *WizardResult) apply(id string, a Answer) {
	switch id {
	case IDProjectName:
		r.ProjectName = a.Text
	case IDTypeScript:
		r.TypeScript = a.Yes
	case IDESLint:
		r.ESLint = a.Yes
	case IDTailwind:
		r.Tailwind = a.Yes
	case IDSrcDir:
		r.SrcDir = a.Yes
	case IDAppRouter:
		r.AppRouter = a.Yes
	case IDTurbopack:
		r.Turbopack = a.Yes
	case IDImportAlias:
		r.ImportAlias = a.Text
	case IDIntl:
		r.Intl = a.Yes
	case IDLocales:
		r.Locales = slices.Clone(a.List)
	case IDDefaultLocale:
		r.DefaultLocale = a.Text
	case IDLocaleRouting:
		r.LocaleRouting = a.Yes
	case IDUI:
		r.UI = a.Yes
	case IDComponents:
		r.Components = slices.Clone(a.List)
	case IDConfirmUI:
		r.ConfirmUI = a.Yes
	}
}
