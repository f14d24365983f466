package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/haywan-uz/haywan-frontend/internal/shell"
	"github.com/haywan-uz/haywan-frontend/internal/template"
	"github.com/haywan-uz/haywan-frontend/internal/ui"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// State is a position in the installation state machine.
type State int

const (
	StateInit State = iota
	StateScaffold
	StateCleanup
	StateLocalize
	StateUILibrary
	StateDone
	StateAborted
)

var stateNames = map[State]string{
	StateInit:      "init",
	StateScaffold:  "scaffold-framework",
	StateCleanup:   "cleanup",
	StateLocalize:  "localize",
	StateUILibrary: "ui-library",
	StateDone:      "done",
	StateAborted:   "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Result summarizes one pipeline run.
type Result struct {
	// State is the final state: StateDone or StateAborted.
	State State

	// Visited lists entered states in order.
	Visited []State

	// Skipped lists states whose condition did not hold.
	Skipped []State

	// CreatedFiles lists generated files relative to the working directory.
	CreatedFiles []string

	// Removed lists paths deleted during cleanup.
	Removed []string

	// Warnings collects non-fatal problems.
	Warnings []string

	// NodeVersion is set when the preflight check ran.
	NodeVersion string
}

func (r *Result) enter(s State) {
	r.State = s
	r.Visited = append(r.Visited, s)
}

// Pipeline runs the installation steps for one project.
type Pipeline struct {
	fs       billy.Filesystem
	workDir  string
	runner   shell.Runner
	emitter  template.Emitter
	reporter ProgressReporter
	progress ui.Progress
	logger   *slog.Logger

	packageRunner  string
	packageManager string
	preflight      bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithReporter sets the step event receiver.
func WithReporter(r ProgressReporter) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.reporter = r
		}
	}
}

// WithProgress sets the activity display used around file generation.
func WithProgress(pr ui.Progress) Option {
	return func(p *Pipeline) {
		if pr != nil {
			p.progress = pr
		}
	}
}

// WithPackageRunner sets the executable that runs installer packages (npx).
func WithPackageRunner(runner string) Option {
	return func(p *Pipeline) {
		if runner != "" {
			p.packageRunner = runner
		}
	}
}

// WithPackageManager sets the executable that installs dependencies (npm).
func WithPackageManager(manager string) Option {
	return func(p *Pipeline) {
		if manager != "" {
			p.packageManager = manager
		}
	}
}

// WithPreflight enables the Node.js version check before scaffolding.
func WithPreflight(enabled bool) Option {
	return func(p *Pipeline) {
		p.preflight = enabled
	}
}

// NewPipeline creates a Pipeline. fs must be rooted at workDir; the project
// is created in the workDir/<name> directory.
func NewPipeline(fs billy.Filesystem, workDir string, runner shell.Runner, opts ...Option) *Pipeline {
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	p := &Pipeline{
		fs:             fs,
		workDir:        workDir,
		runner:         runner,
		reporter:       NoOpReporter{},
		progress:       ui.NewProgress(nil, hm, io.Discard),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		packageRunner:  DefaultPackageRunner,
		packageManager: DefaultPackageManager,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.emitter = template.NewEmitter(fs, p.logger)
	return p
}

// step is one conditional pipeline stage.
type step struct {
	state   State
	title   string
	message string
	enabled func(*models.ProjectConfig) bool
	skip    string
	run     func(context.Context, *models.ProjectConfig, *Result) error
}

func (p *Pipeline) steps() []step {
	return []step{
		{
			state:   StateScaffold,
			title:   "Next.js",
			message: "Creating the Next.js project",
			run:     p.scaffold,
		},
		{
			state:   StateCleanup,
			title:   "Cleanup",
			message: "Removing default git repository and public assets",
			run:     p.cleanup,
		},
		{
			state:   StateLocalize,
			title:   "next-intl",
			message: "Installing and configuring next-intl",
			enabled: (*models.ProjectConfig).WantsIntl,
			skip:    "localization not requested",
			run:     p.localize,
		},
		{
			state:   StateUILibrary,
			title:   "shadcn/ui",
			message: "Installing shadcn/ui",
			enabled: (*models.ProjectConfig).WantsUI,
			skip:    "UI library not requested",
			run:     p.installUI,
		},
	}
}

// Run executes the steps in order. A fatal step failure stops the run and
// is returned as a *StepError; cancellation returns the context error.
// The returned Result is non-nil whenever cfg is.
func (p *Pipeline) Run(ctx context.Context, cfg *models.ProjectConfig) (*Result, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	res := &Result{}
	res.enter(StateInit)

	p.logger.Info("starting pipeline",
		"project", cfg.Name,
		"intl", cfg.WantsIntl(),
		"ui", cfg.WantsUI(),
	)

	if p.preflight {
		p.checkNode(ctx, res)
	}

	for _, s := range p.steps() {
		if err := ctx.Err(); err != nil {
			res.enter(StateAborted)
			return res, err
		}

		if s.enabled != nil && !s.enabled(cfg) {
			p.logger.Debug("step skipped", "step", s.state, "reason", s.skip)
			p.reporter.StepSkip(s.title, s.skip)
			res.Skipped = append(res.Skipped, s.state)
			continue
		}

		res.enter(s.state)
		p.reporter.StepStart(s.title, s.message)

		if err := s.run(ctx, cfg, res); err != nil {
			res.enter(StateAborted)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			p.reporter.StepError(err)
			p.logger.Error("step failed", "step", s.state, "error", err)
			return res, &StepError{Step: s.state, Err: err}
		}
	}

	res.enter(StateDone)
	p.logger.Info("pipeline finished", "project", cfg.Name, "files", len(res.CreatedFiles), "warnings", len(res.Warnings))
	return res, nil
}

// projectDir is the absolute directory external commands run in.
func (p *Pipeline) projectDir(cfg *models.ProjectConfig) string {
	return filepath.Join(p.workDir, cfg.Name)
}

// warn records a best-effort failure.
func (p *Pipeline) warn(res *Result, msg string) {
	res.Warnings = append(res.Warnings, msg)
	p.reporter.StepWarn(msg)
	p.logger.Warn(msg)
}
