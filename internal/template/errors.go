package template

import "errors"

// Sentinel errors for template rendering and file emission.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced a key the data does not provide.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates Go template syntax survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrPathTraversal indicates a generated file path escapes the project root.
	ErrPathTraversal = errors.New("template: path escapes project root")

	// ErrInvalidLocaleDocument indicates a locale message file failed schema validation.
	ErrInvalidLocaleDocument = errors.New("template: invalid locale document")
)
