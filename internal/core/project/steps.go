package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5/util"

	"github.com/haywan-uz/haywan-frontend/internal/defs"
	"github.com/haywan-uz/haywan-frontend/internal/template"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// errProjectMissing means the scaffolder reported success but left no project.
var errProjectMissing = errors.New("project directory was not created")

// checkNode warns when Node.js is missing or too old. It never fails the run.
func (p *Pipeline) checkNode(ctx context.Context, res *Result) {
	version, ok, err := CheckNodeVersion(ctx, p.runner, p.workDir)
	res.NodeVersion = version
	switch {
	case err != nil:
		p.warn(res, fmt.Sprintf("could not determine Node.js version: %v", err))
	case !ok:
		p.warn(res, fmt.Sprintf("Node.js %s does not satisfy %s; create-next-app may fail", version, NodeConstraint))
	default:
		p.logger.Debug("node version ok", "version", version)
	}
}

// scaffold runs create-next-app in the working directory.
func (p *Pipeline) scaffold(ctx context.Context, cfg *models.ProjectConfig, res *Result) error {
	cmd := BuildFrameworkCommand(p.packageRunner, cfg.Name, cfg.Framework)
	p.logger.Info("running installer", "step", StateScaffold, "command", cmd, "dir", p.workDir)

	if err := p.runner.Run(ctx, p.workDir, cmd); err != nil {
		return fmt.Errorf("create-next-app: %w", err)
	}
	if !isDir(p.fs, cfg.Name) {
		return fmt.Errorf("%w: %s", errProjectMissing, cfg.Name)
	}

	p.reporter.StepComplete("Next.js project created")
	return nil
}

// cleanup removes the scaffolder's git repository and public assets. Each
// removal is independent and failures only produce warnings.
func (p *Pipeline) cleanup(_ context.Context, cfg *models.ProjectConfig, res *Result) error {
	for _, dir := range []string{defs.GitDir, defs.PublicDir} {
		target := p.fs.Join(cfg.Name, dir)
		if !exists(p.fs, target) {
			p.logger.Debug("nothing to remove", "path", target)
			continue
		}
		if err := util.RemoveAll(p.fs, target); err != nil {
			p.warn(res, fmt.Sprintf("could not remove %s: %v", target, err))
			continue
		}
		res.Removed = append(res.Removed, target)
		p.reporter.StepUpdate("removed " + target)
	}

	p.reporter.StepComplete("Cleanup finished")
	return nil
}

// localize installs next-intl and writes its configuration and messages.
// Existing files at the generated paths are overwritten.
func (p *Pipeline) localize(ctx context.Context, cfg *models.ProjectConfig, res *Result) error {
	cmd := BuildIntlInstallCommand(p.packageManager)
	p.logger.Info("running installer", "step", StateLocalize, "command", cmd, "dir", p.projectDir(cfg))

	if err := p.runner.Run(ctx, p.projectDir(cfg), cmd); err != nil {
		return fmt.Errorf("install next-intl: %w", err)
	}

	layout := DetectLayout(p.fs, cfg.Name, cfg)
	p.logger.Debug("project layout detected",
		"typescript", layout.TypeScript,
		"src_dir", layout.SrcDir,
		"next_config", layout.NextConfig,
	)

	spin := p.progress.Spinner("Generating next-intl files")
	files, err := template.GenerateIntlFiles(*cfg.Framework.Intl, layout)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("generate next-intl files: %w", err)
	}

	bar := p.progress.Start("Writing next-intl files", len(files))
	defer bar.Done()
	for _, f := range files {
		written, err := p.emitter.Emit(cfg.Name, []template.GeneratedFile{f})
		if err != nil {
			return fmt.Errorf("write next-intl files: %w", err)
		}
		res.CreatedFiles = append(res.CreatedFiles, written...)
		bar.SetTitle(f.Path)
		bar.Increment(1)
	}

	p.reporter.StepComplete(fmt.Sprintf("next-intl configured (%d files)", len(files)))
	return nil
}

// installUI runs shadcn init and, when components were chosen, shadcn add.
func (p *Pipeline) installUI(ctx context.Context, cfg *models.ProjectConfig, res *Result) error {
	dir := p.projectDir(cfg)

	initCmd := BuildUIInitCommand(p.packageRunner)
	p.logger.Info("running installer", "step", StateUILibrary, "command", initCmd, "dir", dir)
	if err := p.runner.Run(ctx, dir, initCmd); err != nil {
		return fmt.Errorf("shadcn init: %w", err)
	}
	if !exists(p.fs, p.fs.Join(cfg.Name, defs.ComponentsJSON)) {
		p.warn(res, defs.ComponentsJSON+" was not created by shadcn init")
	}

	addCmd := BuildUIAddCommand(p.packageRunner, cfg.UI.Components)
	if addCmd == "" {
		p.reporter.StepUpdate("no components selected")
		p.reporter.StepComplete("shadcn/ui initialized")
		return nil
	}

	p.logger.Info("running installer", "step", StateUILibrary, "command", addCmd, "dir", dir)
	if err := p.runner.Run(ctx, dir, addCmd); err != nil {
		return fmt.Errorf("shadcn add: %w", err)
	}

	p.reporter.StepComplete(fmt.Sprintf("shadcn/ui installed with %d components", len(cfg.UI.Components)))
	return nil
}
