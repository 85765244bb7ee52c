package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/lunar/internal/cli/styles"
	"github.com/bnema/lunar/internal/demo"
	"github.com/bnema/lunar/internal/infrastructure/config"
	"github.com/bnema/lunar/internal/infrastructure/window"
)

// errCheckFailed is returned when a strict check finds any problem.
var errCheckFailed = errors.New("bindings check failed")

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Resolve a bindings document against the demo callbacks",
	Long: `Load a bindings document, resolve every entry against the callbacks the
demo registers, and print the resulting table along with skipped entries and
conflicts.

Without --strict the command only fails when the document cannot be read.

Examples:
  lunar check                      # Check the configured document
  lunar check bindings.toml        # Check another document
  lunar check --strict             # Fail on any skipped entry or conflict`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("strict", false, "fail on any skipped entry or conflict")
}

func runCheck(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return checkBindings(app.Ctx(), cmd.OutOrStdout(), app.Theme, bindingsPath(args), app.Settings.Strict)
}

func checkBindings(ctx context.Context, w io.Writer, theme *styles.Theme, path string, strict bool) error {
	renderer := styles.NewBindingsRenderer(theme)

	doc, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(w, renderer.RenderLoadError(path, err))
		return fmt.Errorf("check %s: %w", path, err)
	}

	g, err := demo.New(ctx, &window.Headless{}, demo.Options{BindingsPath: path})
	if err != nil {
		return err
	}
	defer func() { _ = g.Close() }()

	m := g.Manager()
	report, err := m.BindFromConfig(path)
	if err != nil {
		fmt.Fprintln(w, renderer.RenderLoadError(path, err))
		return fmt.Errorf("check %s: %w", path, err)
	}

	res := styles.CheckResult{
		Path:     path,
		Entries:  m.Table().Entries(),
		Report:   report,
		Settings: m.Settings(),
		Invalid:  config.Validate(doc),
	}
	fmt.Fprintln(w, renderer.RenderCheck(res))

	if strict && !res.OK() {
		return errCheckFailed
	}
	return nil
}
