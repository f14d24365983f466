package project

import (
	"context"
	"errors"
	"os"
	"path"
	"slices"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/haywan-uz/haywan-frontend/internal/shell"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

const testWorkDir = "/work"

type runCall struct {
	dir     string
	command string
}

// fakeRunner records invocations and simulates installers on a memfs.
type fakeRunner struct {
	fs      billy.Filesystem
	calls   []runCall
	fail    map[string]error
	outputs map[string]string
	// noScaffold makes create-next-app succeed without creating anything.
	noScaffold bool
	cancel     context.CancelFunc
}

func newFakeRunner(fs billy.Filesystem) *fakeRunner {
	return &fakeRunner{fs: fs, fail: map[string]error{}, outputs: map[string]string{}}
}

func (f *fakeRunner) Run(_ context.Context, dir, command string) error {
	f.calls = append(f.calls, runCall{dir: dir, command: command})
	for prefix, err := range f.fail {
		if strings.Contains(command, prefix) {
			if f.cancel != nil {
				f.cancel()
			}
			return err
		}
	}

	switch {
	case strings.Contains(command, "create-next-app") && !f.noScaffold:
		name := strings.Fields(command)[2]
		for p, content := range map[string]string{
			".git/HEAD":           "ref: refs/heads/main\n",
			"public/next.svg":     "<svg/>",
			"tsconfig.json":       "{}",
			"next.config.ts":      "export default {};\n",
			"src/app/page.tsx":    "export default function Page() {}\n",
			"src/app/globals.css": "",
			"package.json":        "{}",
		} {
			if err := util.WriteFile(f.fs, path.Join(name, p), []byte(content), 0o644); err != nil {
				return err
			}
		}
	case strings.Contains(command, "shadcn@latest init"):
		name := strings.TrimPrefix(dir, testWorkDir+"/")
		return util.WriteFile(f.fs, path.Join(name, "components.json"), []byte("{}"), 0o644)
	}
	return nil
}

func (f *fakeRunner) Output(_ context.Context, dir, command string) (string, error) {
	f.calls = append(f.calls, runCall{dir: dir, command: command})
	if err, ok := f.fail[command]; ok {
		return "", err
	}
	return f.outputs[command], nil
}

func (f *fakeRunner) commands() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.command
	}
	return out
}

func baseConfig() *models.ProjectConfig {
	return &models.ProjectConfig{Name: "demo", Framework: models.DefaultFrameworkOptions()}
}

func TestPipeline_ScaffoldOnly(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	p := NewPipeline(fs, testWorkDir, runner)

	res, err := p.Run(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if res.State != StateDone {
		t.Errorf("state = %s, want done", res.State)
	}
	wantVisited := []State{StateInit, StateScaffold, StateCleanup, StateDone}
	if !slices.Equal(res.Visited, wantVisited) {
		t.Errorf("visited = %v, want %v", res.Visited, wantVisited)
	}
	if !slices.Equal(res.Skipped, []State{StateLocalize, StateUILibrary}) {
		t.Errorf("skipped = %v", res.Skipped)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("calls = %v, want one create-next-app call", runner.commands())
	}
	if runner.calls[0].dir != testWorkDir {
		t.Errorf("scaffold dir = %q, want %q", runner.calls[0].dir, testWorkDir)
	}
	if !strings.HasPrefix(runner.calls[0].command, "npx create-next-app@latest demo --no-interactive") {
		t.Errorf("command = %q", runner.calls[0].command)
	}

	for _, p := range []string{"demo/.git", "demo/public"} {
		if _, err := fs.Stat(p); err == nil {
			t.Errorf("%s should be removed", p)
		}
	}
	if len(res.Removed) != 2 {
		t.Errorf("removed = %v, want .git and public", res.Removed)
	}
	if _, err := fs.Stat("demo/locales"); err == nil {
		t.Error("no locales directory expected without localization")
	}
}

func TestPipeline_Localize(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	p := NewPipeline(fs, testWorkDir, runner)

	intl, err := models.NewLocalizationOptions([]string{"uz", "en"}, "uz", true)
	if err != nil {
		t.Fatalf("NewLocalizationOptions: %v", err)
	}
	cfg := baseConfig()
	cfg.Framework.Intl = intl

	res, err := p.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"demo/locales/uz.json", `"title": "Salom, Dunyo!"`},
		{"demo/locales/en.json", `"title": "Hello, World!"`},
		{"demo/src/middleware.ts", "'/(uz|en)/:path*'"},
		{"demo/src/i18n/routing.ts", `defaultLocale: "uz"`},
		{"demo/next.config.ts", "withNextIntl(nextConfig)"},
	}
	for _, tt := range tests {
		data, err := util.ReadFile(fs, tt.path)
		if err != nil {
			t.Errorf("read %s: %v", tt.path, err)
			continue
		}
		if !strings.Contains(string(data), tt.want) {
			t.Errorf("%s missing %q:\n%s", tt.path, tt.want, data)
		}
	}

	if !slices.Contains(res.CreatedFiles, "demo/locales/uz.json") {
		t.Errorf("created files = %v", res.CreatedFiles)
	}

	install := runner.calls[1]
	if install.command != "npm install next-intl" || install.dir != testWorkDir+"/demo" {
		t.Errorf("intl install call = %+v", install)
	}
}

func TestPipeline_UIWithoutComponentsSkipsAdd(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	p := NewPipeline(fs, testWorkDir, runner)

	cfg := baseConfig()
	cfg.UI = &models.UILibraryOptions{}

	res, err := p.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := []string{
		BuildFrameworkCommand("npx", "demo", cfg.Framework),
		"npx shadcn@latest init",
	}
	if !slices.Equal(runner.commands(), want) {
		t.Errorf("commands = %v, want %v", runner.commands(), want)
	}
	for _, c := range runner.commands() {
		if strings.Contains(c, "shadcn@latest add") {
			t.Errorf("add must not run without components: %q", c)
		}
	}
	if runner.calls[1].dir != testWorkDir+"/demo" {
		t.Errorf("shadcn dir = %q", runner.calls[1].dir)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v", res.Warnings)
	}
}

func TestPipeline_UIWithComponents(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	p := NewPipeline(fs, testWorkDir, runner, WithPackageRunner("bunx"))

	cfg := baseConfig()
	cfg.UI = &models.UILibraryOptions{Components: []string{"button", "dialog"}}

	if _, err := p.Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	cmds := runner.commands()
	if last := cmds[len(cmds)-1]; last != "bunx shadcn@latest add button dialog" {
		t.Errorf("last command = %q", last)
	}
}

func TestPipeline_ScaffoldFailureAborts(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	runner.fail["create-next-app"] = &shell.ExitError{Command: "npx create-next-app@latest", Code: 1}
	p := NewPipeline(fs, testWorkDir, runner)

	intl, _ := models.NewLocalizationOptions([]string{"uz"}, "", true)
	cfg := baseConfig()
	cfg.Framework.Intl = intl
	cfg.UI = &models.UILibraryOptions{Components: []string{"button"}}

	res, err := p.Run(context.Background(), cfg)
	if !errors.Is(err, ErrStepFailed) {
		t.Fatalf("expected ErrStepFailed, got %v", err)
	}
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StateScaffold {
		t.Errorf("step error = %v, want scaffold", err)
	}
	var exitErr *shell.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Errorf("exit error not preserved: %v", err)
	}

	if res.State != StateAborted {
		t.Errorf("state = %s, want aborted", res.State)
	}
	if len(runner.calls) != 1 {
		t.Errorf("no further steps may run, got %v", runner.commands())
	}
	for _, s := range res.Visited {
		if s == StateCleanup || s == StateLocalize || s == StateUILibrary {
			t.Errorf("state %s should not be visited", s)
		}
	}
}

func TestPipeline_ScaffoldWithoutProjectDir(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	runner.noScaffold = true
	p := NewPipeline(fs, testWorkDir, runner)

	_, err := p.Run(context.Background(), baseConfig())
	if !errors.Is(err, errProjectMissing) {
		t.Errorf("expected errProjectMissing, got %v", err)
	}
}

func TestPipeline_LocalizeFailureIsFatal(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	runner.fail["next-intl"] = errors.New("network down")
	p := NewPipeline(fs, testWorkDir, runner)

	intl, _ := models.NewLocalizationOptions([]string{"en"}, "en", false)
	cfg := baseConfig()
	cfg.Framework.Intl = intl
	cfg.UI = &models.UILibraryOptions{}

	_, err := p.Run(context.Background(), cfg)
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StateLocalize {
		t.Fatalf("expected localize StepError, got %v", err)
	}
	for _, c := range runner.commands() {
		if strings.Contains(c, "shadcn") {
			t.Errorf("UI step must not run after a localize failure: %q", c)
		}
	}
}

func TestPipeline_UIFailureIsFatal(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	runner.fail["shadcn@latest add"] = &shell.ExitError{Code: 2}
	p := NewPipeline(fs, testWorkDir, runner)

	cfg := baseConfig()
	cfg.UI = &models.UILibraryOptions{Components: []string{"card"}}

	res, err := p.Run(context.Background(), cfg)
	var stepErr *StepError
	if !errors.As(err, &stepErr) || stepErr.Step != StateUILibrary {
		t.Fatalf("expected ui-library StepError, got %v", err)
	}
	if res.State != StateAborted {
		t.Errorf("state = %s", res.State)
	}
}

func TestPipeline_CleanupNothingToRemove(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	p := NewPipeline(fs, testWorkDir, runner)

	// create-next-app without git and public leaves nothing to clean.
	runner.noScaffold = true
	if err := fs.MkdirAll("demo", 0o755); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := p.Run(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(res.Removed) != 0 || len(res.Warnings) != 0 {
		t.Errorf("removed = %v, warnings = %v", res.Removed, res.Warnings)
	}
	if res.State != StateDone {
		t.Errorf("state = %s", res.State)
	}
}

// stuckFS refuses to remove paths whose base name is in stuck.
type stuckFS struct {
	billy.Filesystem
	stuck map[string]bool
}

func (s *stuckFS) Remove(name string) error {
	if s.stuck[path.Base(name)] {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
	}
	return s.Filesystem.Remove(name)
}

func TestPipeline_CleanupFailureOnlyWarns(t *testing.T) {
	mem := memfs.New()
	runner := newFakeRunner(mem)
	fs := &stuckFS{Filesystem: mem, stuck: map[string]bool{".git": true}}
	p := NewPipeline(fs, testWorkDir, runner)

	cfg := baseConfig()
	cfg.UI = &models.UILibraryOptions{}

	res, err := p.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.State != StateDone {
		t.Errorf("state = %s, want done", res.State)
	}

	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "could not remove demo/.git") {
		t.Errorf("warnings = %v, want one for demo/.git", res.Warnings)
	}
	if !slices.Equal(res.Removed, []string{"demo/public"}) {
		t.Errorf("removed = %v, want [demo/public]", res.Removed)
	}
	if _, err := mem.Stat("demo/public"); err == nil {
		t.Error("demo/public should be gone")
	}

	wantVisited := []State{StateInit, StateScaffold, StateCleanup, StateUILibrary, StateDone}
	if !slices.Equal(res.Visited, wantVisited) {
		t.Errorf("visited = %v, want %v", res.Visited, wantVisited)
	}
}

func TestPipeline_CancelledBeforeStart(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	p := NewPipeline(fs, testWorkDir, runner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Run(ctx, baseConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.State != StateAborted {
		t.Errorf("state = %s", res.State)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no command may run, got %v", runner.commands())
	}
}

func TestPipeline_CancelledDuringStep(t *testing.T) {
	fs := memfs.New()
	runner := newFakeRunner(fs)
	ctx, cancel := context.WithCancel(context.Background())
	runner.cancel = cancel
	runner.fail["create-next-app"] = errors.New("interrupted")
	p := NewPipeline(fs, testWorkDir, runner)

	_, err := p.Run(ctx, baseConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, ErrStepFailed) {
		t.Error("cancellation must not be reported as a step failure")
	}
}

func TestPipeline_NilConfig(t *testing.T) {
	p := NewPipeline(memfs.New(), testWorkDir, newFakeRunner(memfs.New()))
	if _, err := p.Run(context.Background(), nil); !errors.Is(err, ErrNilConfig) {
		t.Errorf("expected ErrNilConfig, got %v", err)
	}
}

func TestPipeline_Preflight(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		fail        error
		wantWarning bool
		wantVersion string
	}{
		{"supported", "v20.11.1", nil, false, "20.11.1"},
		{"too_old", "v16.20.0", nil, true, "16.20.0"},
		{"missing", "", errors.New("node: not found"), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memfs.New()
			runner := newFakeRunner(fs)
			runner.outputs["node --version"] = tt.output
			if tt.fail != nil {
				runner.fail["node --version"] = tt.fail
			}
			p := NewPipeline(fs, testWorkDir, runner, WithPreflight(true))

			res, err := p.Run(context.Background(), baseConfig())
			if err != nil {
				t.Fatalf("preflight must never fail the run: %v", err)
			}
			if got := len(res.Warnings) > 0; got != tt.wantWarning {
				t.Errorf("warnings = %v, want warning %v", res.Warnings, tt.wantWarning)
			}
			if res.NodeVersion != tt.wantVersion {
				t.Errorf("node version = %q, want %q", res.NodeVersion, tt.wantVersion)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if StateLocalize.String() != "localize" {
		t.Errorf("got %q", StateLocalize.String())
	}
	if State(42).String() != "state(42)" {
		t.Errorf("got %q", State(42).String())
	}
}
