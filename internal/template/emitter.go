package template

import (
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/haywan-uz/haywan-frontend/internal/defs"
)

// Emitter writes generated files into a project directory.
type Emitter interface {
	// Emit writes files under root, creating parent directories as needed.
	// Existing files are overwritten. It returns the written paths joined
	// with root, in input order.
	Emit(root string, files []GeneratedFile) ([]string, error)
}

// emitter is the concrete implementation of Emitter.
type emitter struct {
	fs     billy.Filesystem
	logger *slog.Logger
}

// NewEmitter creates an Emitter writing through fs.
// If logger is nil, a discard logger is used.
func NewEmitter(fs billy.Filesystem, logger *slog.Logger) Emitter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &emitter{fs: fs, logger: logger}
}

// Emit validates every path first so a bad entry writes nothing.
func (e *emitter) Emit(root string, files []GeneratedFile) ([]string, error) {
	for _, f := range files {
		if err := validateFilePath(f.Path); err != nil {
			return nil, err
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		dst := e.fs.Join(root, f.Path)

		if dir := path.Dir(dst); dir != "." && dir != "/" {
			if err := e.fs.MkdirAll(dir, defs.DirPerm); err != nil {
				return written, fmt.Errorf("create directory %s: %w", dir, err)
			}
		}

		if err := util.WriteFile(e.fs, dst, f.Content, defs.FilePerm); err != nil {
			return written, fmt.Errorf("write %s: %w", dst, err)
		}

		e.logger.Debug("file emitted", "path", dst, "bytes", len(f.Content))
		written = append(written, dst)
	}

	return written, nil
}

// validateFilePath rejects absolute paths and paths escaping the root.
func validateFilePath(relPath string) error {
	if relPath == "" {
		return fmt.Errorf("%w: empty path", ErrPathTraversal)
	}

	cleaned := path.Clean(strings.ReplaceAll(relPath, `\`, "/"))
	if path.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") || cleaned == "." {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
