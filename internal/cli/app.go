// Package cli holds the dependencies shared by lunar's commands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/bnema/lunar/internal/build"
	"github.com/bnema/lunar/internal/cli/styles"
	"github.com/bnema/lunar/internal/infrastructure/config"
	"github.com/bnema/lunar/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Settings  *config.App
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp decodes settings from v and builds the logger carried by Ctx.
func NewApp(v *viper.Viper) (*App, error) {
	settings, err := config.LoadApp(v)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(settings.Logging.Level)
	logCfg.Format = settings.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().
		Str("bindings", settings.Bindings).
		Bool("watch", settings.Watch).
		Bool("strict", settings.Strict).
		Msg("settings loaded")

	return &App{
		Settings: settings,
		Theme:    styles.NewTheme(),
		ctx:      ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
