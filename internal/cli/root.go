package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/haywan-uz/haywan-frontend/internal/cli/wizard"
	"github.com/haywan-uz/haywan-frontend/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "haywan",
	Short: "Create a Next.js project with next-intl and shadcn/ui",
	Long: `haywan scaffolds a Next.js project in the current directory.

It asks for the project options, runs create-next-app, optionally sets up
next-intl with generated locale files and routing, and optionally installs
shadcn/ui components. Defaults come from ~/.config/haywan/config.yaml.`,
	Version:       version.GetVersion(),
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCreate,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("haywan %s\n", version.GetFullVersion()))
}

// Execute initializes dependencies, runs the root command and returns the
// process exit code.
func Execute() int {
	if err := InitDependencies(); err != nil {
		return ReportError(os.Stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return ReportError(rootCmd.ErrOrStderr(), err)
	}
	return ExitOK
}

// runCreate collects the configuration and runs the pipeline.
func runCreate(cmd *cobra.Command, _ []string) error {
	d := deps
	if d == nil {
		return errors.New("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	headless := d.Headless != nil && d.Headless.IsHeadless()

	if !headless {
		PrintBanner(out, d.Theme)
	}

	collector := wizard.NewCollector(d.Asker, wizard.DefaultQuestions(d.Config, d.FS), d.Config)
	cfg, err := collector.Collect()
	if err != nil {
		return err
	}
	d.Logger.Debug("configuration collected", "name", cfg.Name, "intl", cfg.WantsIntl(), "ui", cfg.WantsUI())

	result, err := d.newPipeline().Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return PrintSummary(out, cfg, result, d.Config.PackageManager, headless)
}
