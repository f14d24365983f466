// Package shell runs installer command lines through an embedded POSIX
// shell interpreter. Every call names its working directory explicitly; the
// process working directory is never changed.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ErrEmptyCommand is returned when asked to run a blank command line.
var ErrEmptyCommand = errors.New("shell: empty command")

// ExitError reports a command that ran but exited with a non-zero status.
type ExitError struct {
	Command string
	Dir     string
	Code    int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

// Runner executes command lines synchronously.
type Runner interface {
	// Run executes command in dir with the runner's standard streams,
	// which normally are the surrounding terminal.
	Run(ctx context.Context, dir, command string) error

	// Output executes command in dir and returns its trimmed stdout.
	Output(ctx context.Context, dir, command string) (string, error)
}

// Option configures a Runner.
type Option func(*shRunner)

// WithStdIO overrides the streams used by Run.
func WithStdIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *shRunner) {
		r.stdin, r.stdout, r.stderr = stdin, stdout, stderr
	}
}

// WithEnv replaces the inherited environment.
func WithEnv(env []string) Option {
	return func(r *shRunner) {
		r.env = env
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *shRunner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type shRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	env    []string
	logger *slog.Logger
}

// NewRunner creates a Runner attached to the process's standard streams
// and environment.
func NewRunner(opts ...Option) Runner {
	r := &shRunner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		env:    os.Environ(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes command in dir.
func (r *shRunner) Run(ctx context.Context, dir, command string) error {
	return r.exec(ctx, dir, command, r.stdin, r.stdout, r.stderr)
}

// Output executes command in dir and captures stdout.
func (r *shRunner) Output(ctx context.Context, dir, command string) (string, error) {
	var out bytes.Buffer
	if err := r.exec(ctx, dir, command, nil, &out, io.Discard); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

func (r *shRunner) exec(ctx context.Context, dir, command string, stdin io.Reader, stdout, stderr io.Writer) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return fmt.Errorf("parse command %q: %w", command, err)
	}

	if dir == "" {
		dir = "."
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve directory %q: %w", dir, err)
	}

	runner, err := interp.New(
		interp.Dir(absDir),
		interp.Env(expand.ListEnviron(r.env...)),
		interp.StdIO(stdin, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("create interpreter: %w", err)
	}

	r.logger.Debug("running command", "command", command, "dir", absDir)

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return &ExitError{Command: command, Dir: absDir, Code: int(status)}
		}
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}
