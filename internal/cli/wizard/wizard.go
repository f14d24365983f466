package wizard

import (
	"fmt"
	"slices"

	"github.com/haywan-uz/haywan-frontend/internal/config"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// Collector asks questions section by section and turns the answers into
// model records. Answers accumulate in one WizardResult, so later sections
// see earlier answers.
type Collector struct {
	asker     Asker
	questions []Question
	result    *WizardResult
}

// NewCollector creates a Collector. The result starts out holding the
// defaults from cfg, which fill every field that is never asked.
func NewCollector(asker Asker, questions []Question, cfg *config.Config) *Collector {
	if asker == nil {
		asker = HeadlessAsker{}
	}
	return &Collector{
		asker:     asker,
		questions: questions,
		result:    newResult(cfg),
	}
}

func newResult(cfg *config.Config) *WizardResult {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &WizardResult{
		ProjectName:   cfg.ProjectName,
		TypeScript:    cfg.Framework.TypeScript,
		ESLint:        cfg.Framework.ESLint,
		Tailwind:      cfg.Framework.Tailwind,
		SrcDir:        cfg.Framework.SrcDir,
		AppRouter:     cfg.Framework.AppRouter,
		Turbopack:     cfg.Framework.Turbopack,
		ImportAlias:   cfg.Framework.ImportAlias,
		Intl:          cfg.Intl.Enabled,
		Locales:       slices.Clone(cfg.Intl.Locales),
		DefaultLocale: cfg.Intl.DefaultLocale,
		LocaleRouting: cfg.Intl.LocaleRouting,
		UI:            cfg.UI.Enabled,
		Components:    slices.Clone(cfg.UI.Components),
		ConfirmUI:     true,
	}
}

// Result returns the answers collected so far.
func (c *Collector) Result() *WizardResult {
	return c.result
}

// ask runs the visible questions of the given sections in declaration order.
func (c *Collector) ask(sections ...Section) error {
	asked := 0
	for i := range c.questions {
		q := &c.questions[i]
		if !slices.Contains(sections, q.Section) {
			continue
		}
		asked++
		if !q.Visible(c.result) {
			continue
		}

		resolved := q.resolve(c.result)
		answer, err := c.asker.Ask(resolved, c.result)
		if err != nil {
			return err
		}
		if err := validateAnswer(&resolved, answer); err != nil {
			return fmt.Errorf("%s: %w", q.ID, err)
		}
		c.result.apply(q.ID, answer)
	}
	if asked == 0 {
		return fmt.Errorf("%w: section %v", ErrNoQuestions, sections)
	}
	return nil
}

// CollectName asks for the project name.
func (c *Collector) CollectName() (string, error) {
	if err := c.ask(SectionProject); err != nil {
		return "", err
	}
	return c.result.ProjectName, nil
}

// CollectFrameworkOptions asks the create-next-app questions followed by the
// localization questions, which nest inside the framework options.
func (c *Collector) CollectFrameworkOptions() (models.FrameworkOptions, error) {
	if err := c.ask(SectionFramework); err != nil {
		return models.FrameworkOptions{}, err
	}
	intl, err := c.CollectLocalizationOptions()
	if err != nil {
		return models.FrameworkOptions{}, err
	}

	r := c.result
	return models.FrameworkOptions{
		TypeScript:  r.TypeScript,
		ESLint:      r.ESLint,
		Tailwind:    r.Tailwind,
		SrcDir:      r.SrcDir,
		AppRouter:   r.AppRouter,
		Turbopack:   r.Turbopack,
		ImportAlias: r.ImportAlias,
		Intl:        intl,
	}, nil
}

// CollectLocalizationOptions asks the localization questions. It returns nil
// when localization was declined.
func (c *Collector) CollectLocalizationOptions() (*models.LocalizationOptions, error) {
	if err := c.ask(SectionIntl); err != nil {
		return nil, err
	}
	if !c.result.Intl {
		return nil, nil
	}
	opts, err := models.NewLocalizationOptions(c.result.Locales, c.result.DefaultLocale, c.result.LocaleRouting)
	if err != nil {
		return nil, fmt.Errorf("localization options: %w", err)
	}
	return opts, nil
}

// CollectUIOptions asks the UI library questions. It returns nil when the
// library was declined or the final confirmation was refused.
func (c *Collector) CollectUIOptions() (*models.UILibraryOptions, error) {
	if err := c.ask(SectionUI); err != nil {
		return nil, err
	}
	if !c.result.UI || !c.result.ConfirmUI {
		return nil, nil
	}
	opts, err := models.NewUILibraryOptions(c.result.Components)
	if err != nil {
		return nil, fmt.Errorf("ui options: %w", err)
	}
	return opts, nil
}

// Collect runs every section in canonical order.
func (c *Collector) Collect() (*models.ProjectConfig, error) {
	name, err := c.CollectName()
	if err != nil {
		return nil, err
	}
	framework, err := c.CollectFrameworkOptions()
	if err != nil {
		return nil, err
	}
	uiOpts, err := c.CollectUIOptions()
	if err != nil {
		return nil, err
	}
	return &models.ProjectConfig{Name: name, Framework: framework, UI: uiOpts}, nil
}
