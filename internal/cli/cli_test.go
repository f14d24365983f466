package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/haywan-uz/haywan-frontend/internal/cli/wizard"
	"github.com/haywan-uz/haywan-frontend/internal/config"
	"github.com/haywan-uz/haywan-frontend/internal/core/project"
	"github.com/haywan-uz/haywan-frontend/internal/shell"
	"github.com/haywan-uz/haywan-frontend/internal/ui"
	"github.com/haywan-uz/haywan-frontend/pkg/models"
)

const testWorkDir = "/work"

// installerStub simulates create-next-app and shadcn on a memfs.
type installerStub struct {
	fs       billy.Filesystem
	commands []string
	fail     string
}

func (s *installerStub) Run(_ context.Context, dir, command string) error {
	s.commands = append(s.commands, command)
	if s.fail != "" && strings.Contains(command, s.fail) {
		return &shell.ExitError{Command: command, Dir: dir, Code: 1}
	}
	switch {
	case strings.Contains(command, "create-next-app"):
		name := strings.Fields(command)[2]
		for p, content := range map[string]string{
			".git/HEAD":        "ref: refs/heads/main\n",
			"public/a.svg":     "<svg/>",
			"tsconfig.json":    "{}",
			"package.json":     "{}",
			"src/app/page.tsx": "export default function Page() {}\n",
		} {
			if err := util.WriteFile(s.fs, path.Join(name, p), []byte(content), 0o644); err != nil {
				return err
			}
		}
	case strings.Contains(command, "shadcn@latest init"):
		name := strings.TrimPrefix(dir, testWorkDir+"/")
		return util.WriteFile(s.fs, path.Join(name, "components.json"), []byte("{}"), 0o644)
	}
	return nil
}

func (s *installerStub) Output(_ context.Context, _, command string) (string, error) {
	s.commands = append(s.commands, command)
	return "v20.11.0\n", nil
}

func testDeps(t *testing.T, cfg *config.Config) (*Dependencies, *installerStub) {
	t.Helper()

	fs := memfs.New()
	stub := &installerStub{fs: fs}
	theme := &ui.Theme{Colors: ui.DefaultColors, NoColor: true}
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	d := &Dependencies{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		WorkDir:  testWorkDir,
		FS:       fs,
		Runner:   stub,
		Theme:    theme,
		Headless: hm,
		Progress: ui.NewProgress(theme, hm, io.Discard),
		Asker:    wizard.HeadlessAsker{},
		Reporter: project.NoOpReporter{},
	}
	orig := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(orig) })
	return d, stub
}

func runTestCommand(t *testing.T) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	err := runCreate(cmd, nil)
	return buf.String(), err
}

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "haywan" {
		t.Errorf("Use = %q, want haywan", rootCmd.Use)
	}
	if len(rootCmd.Commands()) != 0 {
		t.Errorf("root command has %d subcommands, want none", len(rootCmd.Commands()))
	}
	if rootCmd.Version == "" {
		t.Error("Version should be set")
	}
	if !rootCmd.SilenceErrors || !rootCmd.SilenceUsage {
		t.Error("errors are reported by ReportError, cobra must stay silent")
	}
	if err := rootCmd.Args(rootCmd, []string{"extra"}); err == nil {
		t.Error("positional arguments should be rejected")
	}
}

func TestRunCreate_Headless(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.UI.Components = []string{"button"}
	d, stub := testDeps(t, cfg)

	out, err := runTestCommand(t)
	if err != nil {
		t.Fatalf("runCreate error = %v", err)
	}

	if !strings.Contains(out, "cd haywan-app && npm run dev") {
		t.Errorf("summary missing next steps:\n%s", out)
	}
	if strings.Contains(out, "F R O N T E N D") {
		t.Error("banner printed in headless mode")
	}

	for _, p := range []string{"haywan-app/locales/uz.json", "haywan-app/src/i18n/routing.ts", "haywan-app/components.json"} {
		if _, err := d.FS.Stat(p); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
	if _, err := d.FS.Stat("haywan-app/.git"); err == nil {
		t.Error(".git should have been removed")
	}

	want := []string{
		"node --version",
		"npx create-next-app@latest haywan-app",
		"npm install next-intl",
		"npx shadcn@latest init",
		"npx shadcn@latest add button",
	}
	if len(stub.commands) != len(want) {
		t.Fatalf("commands = %q", stub.commands)
	}
	for i, prefix := range want {
		if !strings.HasPrefix(stub.commands[i], prefix) {
			t.Errorf("command %d = %q, want prefix %q", i, stub.commands[i], prefix)
		}
	}
}

func TestRunCreate_HeadlessInvalidName(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.ProjectName = "Bad Name"
	_, stub := testDeps(t, cfg)

	_, err := runTestCommand(t)
	if !errors.Is(err, project.ErrInvalidName) {
		t.Fatalf("error = %v, want ErrInvalidName", err)
	}
	if len(stub.commands) != 0 {
		t.Errorf("no installer should run, got %q", stub.commands)
	}
	if code := ReportError(io.Discard, err); code != ExitFailure {
		t.Errorf("exit code = %d, want %d", code, ExitFailure)
	}
}

func TestRunCreate_StepFailure(t *testing.T) {
	cfg := config.NewDefaultConfig()
	_, stub := testDeps(t, cfg)
	stub.fail = "create-next-app"

	_, err := runTestCommand(t)
	var stepErr *project.StepError
	if !errors.As(err, &stepErr) || stepErr.Step != project.StateScaffold {
		t.Fatalf("error = %v, want scaffold StepError", err)
	}
}

func TestRunCreate_NoDeps(t *testing.T) {
	orig := GetDeps()
	SetDeps(nil)
	t.Cleanup(func() { SetDeps(orig) })

	if _, err := runTestCommand(t); err == nil {
		t.Error("expected error without dependencies")
	}
}

func TestReportError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		want     []string
	}{
		{name: "nil", err: nil, wantCode: ExitOK},
		{
			name:     "cancelled",
			err:      fmt.Errorf("collect: %w", wizard.ErrCancelled),
			wantCode: ExitOK,
			want:     []string{"cancelled"},
		},
		{
			name:     "step failure",
			err:      &project.StepError{Step: project.StateLocalize, Err: errors.New("npm exploded")},
			wantCode: ExitFailure,
			want:     []string{"✖ An error occurred:", "localize", "npm exploded"},
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: ExitFailure,
			want:     []string{"✖ An error occurred:", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if code := ReportError(&buf, tt.err); code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			for _, s := range tt.want {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("output missing %q:\n%s", s, buf.String())
				}
			}
		})
	}
}

func TestSummaryMarkdown(t *testing.T) {
	t.Parallel()

	intl, err := models.NewLocalizationOptions([]string{"uz", "en"}, "uz", true)
	if err != nil {
		t.Fatal(err)
	}
	fw := models.DefaultFrameworkOptions()
	fw.Intl = intl
	cfg := &models.ProjectConfig{
		Name:      "shop",
		Framework: fw,
		UI:        &models.UILibraryOptions{Components: []string{"button", "card"}},
	}
	res := &project.Result{Warnings: []string{"could not remove shop/public"}}

	md := summaryMarkdown(cfg, res, "pnpm")
	for _, want := range []string{"shop", "cd shop && pnpm run dev", "uz, en", "button, card", "could not remove shop/public"} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q:\n%s", want, md)
		}
	}

	bare := summaryMarkdown(&models.ProjectConfig{Name: "x"}, nil, "")
	if !strings.Contains(bare, "cd x && npm run dev") || strings.Contains(bare, "Warnings") {
		t.Errorf("bare summary:\n%s", bare)
	}
}

func TestPrintSummary_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := &models.ProjectConfig{Name: "demo"}
	if err := PrintSummary(&buf, cfg, nil, "npm", true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != summaryMarkdown(cfg, nil, "npm") {
		t.Errorf("plain summary should be the raw markdown, got:\n%s", buf.String())
	}
}

func TestBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintBanner(&buf, &ui.Theme{Colors: ui.DefaultColors, NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "F R O N T E N D") || !strings.Contains(out, "https://haywan.uz") {
		t.Errorf("banner output:\n%s", out)
	}
}

func TestGradient(t *testing.T) {
	t.Parallel()

	stops := gradient("#000000", "#ffffff", 3)
	if len(stops) != 3 {
		t.Fatalf("got %d stops", len(stops))
	}
	if stops[0] != "#000000" || stops[2] != "#ffffff" {
		t.Errorf("endpoints = %s, %s", stops[0], stops[2])
	}
	if stops[1] == stops[0] || stops[1] == stops[2] {
		t.Errorf("middle stop %s not blended", stops[1])
	}

	for _, s := range gradient("nope", "#ffffff", 2) {
		if s != "nope" {
			t.Errorf("invalid colour should fall back, got %s", s)
		}
	}
	if got := gradient("#112233", "#445566", 1); got[0] != "#112233" {
		t.Errorf("single stop = %s", got[0])
	}
}
