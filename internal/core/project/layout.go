package project

import (
	"github.com/go-git/go-billy/v5"

	"github.com/haywan-uz/haywan-frontend/internal/defs"
	"github.com/haywan-uz/haywan-frontend/internal/template"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

// DetectLayout inspects a scaffolded project and combines what it finds with
// the chosen options. Files on disk win over options: create-next-app may
// ignore a flag, so a tsconfig.json or src/ that exists is authoritative.
func DetectLayout(fs billy.Filesystem, projectDir string, cfg *models.ProjectConfig) template.ProjectLayout {
	layout := template.ProjectLayout{
		Name:        cfg.Name,
		AppRouter:   cfg.Framework.AppRouter,
		ImportAlias: cfg.Framework.ImportAlias,
		TypeScript:  exists(fs, fs.Join(projectDir, defs.TSConfigJSON)),
		SrcDir:      isDir(fs, fs.Join(projectDir, defs.SrcDir)),
	}

	for _, candidate := range defs.NextConfigCandidates {
		if exists(fs, fs.Join(projectDir, candidate)) {
			layout.NextConfig = candidate
			break
		}
	}

	return layout
}

func exists(fs billy.Filesystem, p string) bool {
	_, err := fs.Stat(p)
	return err == nil
}

func isDir(fs billy.Filesystem, p string) bool {
	info, err := fs.Stat(p)
	return err == nil && info.IsDir()
}
