package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/lunar/internal/cli/styles"
	"github.com/bnema/lunar/internal/infrastructure/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default bindings document",
	Long: `Write the bindings the camera demo ships with. The format follows the
file extension (.yaml, .yml, .toml or .json).

An existing document is never replaced unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing document")
}

func runInit(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return writeDefaultBindings(cmd.OutOrStdout(), app.Theme, bindingsPath(args), initForce)
}

func writeDefaultBindings(w io.Writer, theme *styles.Theme, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	doc := config.DefaultDocument()
	if err := config.Validate(doc); err != nil {
		return err
	}
	if err := config.Write(doc, path); err != nil {
		return err
	}

	fmt.Fprintln(w, styles.NewBindingsRenderer(theme).RenderWritten(path, len(doc.Bindings)))
	return nil
}
