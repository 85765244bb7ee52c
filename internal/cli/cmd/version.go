package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/lunar/internal/build"
	"github.com/bnema/lunar/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		printVersion(cmd.OutOrStdout(), app.Theme, app.BuildInfo)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer, theme *styles.Theme, info build.Info) {
	fmt.Fprintf(w, "%s %s\n", theme.Title.Render("lunar"), theme.Highlight.Render(info.Version))
	fmt.Fprintf(w, "%s %s\n", theme.Subtle.Render("commit:"), info.Commit)
	fmt.Fprintf(w, "%s %s\n", theme.Subtle.Render("built:"), info.BuildDate)
	fmt.Fprintf(w, "%s %s\n", theme.Subtle.Render("go:"), info.GoVersion)
	fmt.Fprintf(w, "%s %s\n", theme.Subtle.Render("repo:"), build.RepoURL())
}
