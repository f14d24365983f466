package defs

import "os"

// Permissions for files and directories written into generated projects.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Paths inside a freshly scaffolded Next.js project.
const (
	// GitDir is the repository metadata create-next-app initializes.
	GitDir = ".git"

	// PublicDir holds the placeholder assets create-next-app ships.
	PublicDir = "public"

	// SrcDir is the optional source directory.
	SrcDir = "src"

	// LocalesDir holds one message file per locale.
	LocalesDir = "locales"

	// I18nDir holds the next-intl routing and request configuration.
	I18nDir = "i18n"

	// TSConfigJSON marks a TypeScript project.
	TSConfigJSON = "tsconfig.json"

	// ComponentsJSON is the shadcn/ui manifest written by "shadcn init".
	ComponentsJSON = "components.json"
)

// NextConfigCandidates lists framework config file names in lookup order.
var NextConfigCandidates = []string{"next.config.ts", "next.config.mjs", "next.config.js"}

// Application-level names.
const (
	// AppName is the binary and config directory name.
	AppName = "haywan"

	// ConfigFileName is the user configuration file under the config directory.
	ConfigFileName = "config.yaml"

	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "HAYWAN_"
)
