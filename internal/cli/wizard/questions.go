package wizard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-git/go-billy/v5"

	"github.com/haywan-uz/haywan-frontend/internal/config"
	"github.com/haywan-uz/haywan-frontend/internal/core/project"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// DefaultQuestions returns the haywan questions in canonical order with
// defaults taken from cfg. The project-name question validates against fs,
// which must be rooted at the directory the project is created in.
func DefaultQuestions(cfg *config.Config, fs billy.Filesystem) []Question {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	return []Question{
		{
			ID:          IDProjectName,
			Section:     SectionProject,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Used as the directory name and the package name.",
			Default:     Answer{Text: cfg.ProjectName},
			Required:    true,
			Validate: func(a Answer) error {
				return project.ValidateName(fs, a.Text)
			},
		},
		confirm(IDTypeScript, SectionFramework, "Use TypeScript?", "", cfg.Framework.TypeScript),
		confirm(IDESLint, SectionFramework, "Use ESLint?", "", cfg.Framework.ESLint),
		confirm(IDTailwind, SectionFramework, "Use Tailwind CSS?", "", cfg.Framework.Tailwind),
		confirm(IDSrcDir, SectionFramework, "Put the code inside a `src/` directory?", "", cfg.Framework.SrcDir),
		confirm(IDAppRouter, SectionFramework, "Use the App Router?", "Recommended.", cfg.Framework.AppRouter),
		confirm(IDTurbopack, SectionFramework, "Use Turbopack for `next dev`?", "", cfg.Framework.Turbopack),
		{
			ID:          IDImportAlias,
			Section:     SectionFramework,
			Type:        QuestionTypeInput,
			Title:       "Import alias",
			Description: fmt.Sprintf("The default is %q.", models.DefaultImportAlias),
			Default:     Answer{Text: cfg.Framework.ImportAlias},
			Required:    true,
			Validate: func(a Answer) error {
				return models.ValidateImportAlias(a.Text)
			},
		},
		confirm(IDIntl, SectionIntl, "Add localization with next-intl?", "", cfg.Intl.Enabled),
		{
			ID:          IDLocales,
			Section:     SectionIntl,
			Type:        QuestionTypeMultiSelect,
			Title:       "Which locales should the project support?",
			Description: "Space to toggle, enter to confirm.",
			Options:     localeOptions(cfg.Intl.Locales),
			Default:     Answer{List: slices.Clone(cfg.Intl.Locales)},
			Required:    true,
			Condition:   func(r *WizardResult) bool { return r.Intl },
		},
		{
			ID:      IDDefaultLocale,
			Section: SectionIntl,
			Type:    QuestionTypeSelect,
			Title:   "Default locale",
			OptionsFunc: func(r *WizardResult) []Option {
				return labelLocales(r.Locales)
			},
			Default:   Answer{Text: cfg.Intl.DefaultLocale},
			Required:  true,
			Condition: func(r *WizardResult) bool { return r.Intl },
		},
		{
			ID:          IDLocaleRouting,
			Section:     SectionIntl,
			Type:        QuestionTypeConfirm,
			Title:       "Prefix routes with the locale?",
			Description: "Serves pages under /uz, /en and so on through app/[locale].",
			Default:     Answer{Yes: cfg.Intl.LocaleRouting},
			Condition:   func(r *WizardResult) bool { return r.Intl && r.AppRouter },
		},
		confirm(IDUI, SectionUI, "Install the shadcn/ui component library?", "", cfg.UI.Enabled),
		{
			ID:          IDComponents,
			Section:     SectionUI,
			Type:        QuestionTypeMultiSelect,
			Title:       "Which components should be added?",
			Description: "Leave empty to only initialize the library.",
			Options:     componentOptions(),
			Default:     Answer{List: slices.Clone(cfg.UI.Components)},
			Condition:   func(r *WizardResult) bool { return r.UI },
		},
		{
			ID:        IDConfirmUI,
			Section:   SectionUI,
			Type:      QuestionTypeConfirm,
			Title:     "Continue with this configuration?",
			Default:   Answer{Yes: true},
			Condition: func(r *WizardResult) bool { return r.UI },
		},
	}
}

func confirm(id string, section Section, title, desc string, def bool) Question {
	return Question{
		ID:          id,
		Section:     section,
		Type:        QuestionTypeConfirm,
		Title:       title,
		Description: desc,
		Default:     Answer{Yes: def},
	}
}

// localeOptions lists the given codes first, in order, followed by the
// remaining common locales.
func localeOptions(first []string) []Option {
	codes := slices.Clone(first)
	for _, c := range models.CommonLocales {
		if !slices.Contains(codes, c) {
			codes = append(codes, c)
		}
	}
	return labelLocales(codes)
}

func labelLocales(codes []string) []Option {
	opts := make([]Option, len(codes))
	for i, c := range codes {
		opts[i] = Option{Label: models.LocaleName(c), Value: c}
	}
	return opts
}

func componentOptions() []Option {
	opts := make([]Option, len(models.ComponentCatalog))
	for i, c := range models.ComponentCatalog {
		opts[i] = Option{Label: c.Title, Value: c.Name}
	}
	return opts
}

// validateAnswer applies the Required rule and the question's own validator.
func validateAnswer(q *Question, a Answer) error {
	if q.Required {
		switch q.Type {
		case QuestionTypeInput, QuestionTypeSelect:
			if a.Text == "" {
				return errors.New("a value is required")
			}
		case QuestionTypeMultiSelect:
			if len(a.List) == 0 {
				return errors.New("select at least one option")
			}
		}
	}
	if q.Validate != nil {
		return q.Validate(a)
	}
	return nil
}

// FilteredQuestions returns the questions visible for the current result.
func FilteredQuestions(questions []Question, result *WizardResult) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Visible(result) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
