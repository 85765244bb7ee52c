// Package cmd provides Cobra CLI commands for lunar.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/lunar/internal/build"
	"github.com/bnema/lunar/internal/cli"
	"github.com/bnema/lunar/internal/infrastructure/config"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "lunar",
		Short: "Keyboard and mouse bindings for ebiten scenes",
		Long: `Lunar maps keyboard keys, pointer buttons, scrolling and pointer motion
to named callbacks through a bindings document (YAML, TOML or JSON).

Use 'lunar run' to open the camera demo, or explore the subcommands to
check, scaffold and describe bindings documents.

Settings can also come from the environment:
  LUNAR_BINDINGS, LUNAR_WATCH, LUNAR_STRICT, LUNAR_LOG_LEVEL, LUNAR_LOG_FORMAT`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			v, err := config.NewAppViper()
			if err != nil {
				return err
			}
			if err := bindFlags(v, cmd); err != nil {
				return err
			}

			app, err = cli.NewApp(v)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("bindings", "b", config.DefaultBindingsFile, "bindings document (.yaml, .toml or .json)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "console", "log format: console or json")
}

// bindFlags layers the flags cmd knows about on top of v.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	keys := map[string]string{
		"bindings":   "bindings",
		"log-level":  "logging.level",
		"log-format": "logging.format",
		"watch":      "watch",
		"strict":     "strict",
	}
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// bindingsPath prefers an explicit argument over the configured document.
func bindingsPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return app.Settings.Bindings
}
