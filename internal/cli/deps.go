// Package cli provides the cobra root command and the dependency wiring for
// the haywan CLI. This file defines the Dependencies struct (Composition
// Root) that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/haywan-uz/haywan-frontend/internal/cli/wizard"
	"github.com/haywan-uz/haywan-frontend/internal/config"
	"github.com/haywan-uz/haywan-frontend/internal/core/project"
	"github.com/haywan-uz/haywan-frontend/internal/shell"
	"github.com/haywan-uz/haywan-frontend/internal/ui"
)

// Dependencies holds the services used by the root command. This is the
// only place where concrete types are instantiated.
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	WorkDir  string
	FS       billy.Filesystem
	Runner   shell.Runner
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Progress ui.Progress
	Asker    wizard.Asker
	Reporter project.ProgressReporter
	Out      io.Writer
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies loads the user configuration and wires every service.
// It should be called once during application startup.
func InitDependencies() error {
	handler := newLogHandler(os.Stderr)
	logger := slog.New(handler)

	loader := config.NewLoader(logger)
	path, err := loader.DefaultPath()
	if err != nil {
		logger.Debug("no user config directory", "error", err)
	}
	cfg, err := loader.Load(path)
	if err != nil {
		return err
	}
	handler.SetLevel(charmlog.Level(cfg.SlogLevel()))

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	theme := ui.NewTheme()
	hm := ui.NewHeadlessManager()

	var asker wizard.Asker = wizard.HeadlessAsker{}
	if !hm.IsHeadless() {
		asker = wizard.NewHuhAsker(theme)
	}

	deps = &Dependencies{
		Config:   cfg,
		Logger:   logger,
		WorkDir:  workDir,
		FS:       osfs.New(workDir),
		Runner:   shell.NewRunner(shell.WithLogger(logger)),
		Theme:    theme,
		Headless: hm,
		Progress: ui.NewProgress(theme, hm, os.Stdout),
		Asker:    asker,
		Reporter: project.NewConsoleReporter(os.Stdout),
		Out:      os.Stdout,
	}
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newLogHandler returns a charmbracelet/log logger writing to w. It
// implements slog.Handler, so the rest of the code only sees *slog.Logger.
func newLogHandler(w io.Writer) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.InfoLevel,
		ReportTimestamp: false,
		Prefix:          "haywan",
	})
}

// newPipeline builds the installation pipeline from the wired services.
func (d *Dependencies) newPipeline() *project.Pipeline {
	return project.NewPipeline(d.FS, d.WorkDir, d.Runner,
		project.WithLogger(d.Logger),
		project.WithReporter(d.Reporter),
		project.WithProgress(d.Progress),
		project.WithPackageRunner(d.Config.PackageRunner),
		project.WithPackageManager(d.Config.PackageManager),
		project.WithPreflight(true),
	)
}
