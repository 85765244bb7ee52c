package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/lunar/internal/cli/styles"
	"github.com/bnema/lunar/internal/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys [filter]",
	Short: "List input names accepted in bindings documents",
	Long: `List every key and pointer input name with its numeric code.

An optional filter keeps only names containing it, ignoring case.

Examples:
  lunar keys              # Everything
  lunar keys kp_          # Numeric keypad
  lunar keys mouse        # Pointer inputs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	var filter string
	if len(args) > 0 {
		filter = args[0]
	}
	return listKeys(cmd.OutOrStdout(), app.Theme, filter)
}

func listKeys(w io.Writer, theme *styles.Theme, filter string) error {
	names := filterInputNames(input.InputNames(), filter)
	if len(names) == 0 {
		return fmt.Errorf("no input name matches %q", filter)
	}
	fmt.Fprintln(w, styles.NewBindingsRenderer(theme).RenderKeys(names))
	return nil
}

func filterInputNames(names []input.InputName, filter string) []input.InputName {
	filter = strings.ToUpper(strings.TrimSpace(filter))
	if filter == "" {
		return names
	}
	out := names[:0:0]
	for _, n := range names {
		if strings.Contains(n.Name, filter) {
			out = append(out, n)
		}
	}
	return out
}
