package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lunar/internal/demo"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the camera demo",
	Long: `Open a window with a fly-through camera over a wireframe cube, driven by
the configured bindings document.

A document that cannot be loaded leaves the scene unbound. With --watch,
saving the document rebinds the running scene.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return demo.Run(app.Ctx(), demo.Options{
			BindingsPath: app.Settings.Bindings,
			Watch:        app.Settings.Watch,
			Strict:       app.Settings.Strict,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("watch", "w", false, "rebind when the document changes")
	runCmd.Flags().Bool("strict", false, "reject documents with any skipped entry or conflict")
}
