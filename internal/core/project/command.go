package project

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// Default executables for running and installing npm packages.
const (
	DefaultPackageRunner  = "npx"
	DefaultPackageManager = "npm"
)

// Installer packages invoked through the package runner.
const (
	createNextAppPackage = "create-next-app@latest"
	shadcnPackage        = "shadcn@latest"
	nextIntlPackage      = "next-intl"
)

// flag returns on when enabled, otherwise off.
func flag(enabled bool, on, off string) string {
	if enabled {
		return on
	}
	return off
}

// BuildFrameworkCommand returns the create-next-app command line for a
// project. The result depends only on its arguments.
func BuildFrameworkCommand(runner, name string, o models.FrameworkOptions) string {
	parts := []string{
		runner,
		createNextAppPackage,
		shellWord(name),
		"--no-interactive",
		flag(o.TypeScript, "--typescript", "--no-typescript"),
		flag(o.ESLint, "--eslint", "--no-eslint"),
		flag(o.Tailwind, "--tailwind", "--no-tailwind"),
		flag(o.SrcDir, "--src-dir", "--no-src-dir"),
		flag(o.AppRouter, "--app", "--no-app"),
		flag(o.Turbopack, "--turbopack", "--no-turbopack"),
	}

	if o.ImportAlias != models.DefaultImportAlias {
		parts = append(parts, "--import-alias", shellWord(o.ImportAlias))
	} else {
		parts = append(parts, "--no-import-alias")
	}

	return joinParts(parts)
}

// BuildUIInitCommand returns the shadcn init command line.
func BuildUIInitCommand(runner string) string {
	return joinParts([]string{runner, shadcnPackage, "init"})
}

// BuildUIAddCommand returns the shadcn add command line, or "" when there
// are no components to add.
func BuildUIAddCommand(runner string, components []string) string {
	if len(components) == 0 {
		return ""
	}
	parts := append([]string{runner, shadcnPackage, "add"}, components...)
	return joinParts(parts)
}

// BuildIntlInstallCommand returns the command that adds next-intl to a project.
func BuildIntlInstallCommand(manager string) string {
	return joinParts([]string{manager, "install", nextIntlPackage})
}

// shellWord quotes user input that the shell would otherwise expand, such as
// the glob in "~/*". Plain words are returned unchanged.
func shellWord(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return s
	}
	return quoted
}

// joinParts joins non-blank parts with single spaces.
func joinParts(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
