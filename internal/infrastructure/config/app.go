package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by the CLI.
const EnvPrefix = "LUNAR"

// DefaultBindingsFile is used when no bindings path is configured.
const DefaultBindingsFile = "bindings.yaml"

// App holds settings for the lunar binary itself.
type App struct {
	Bindings string        `mapstructure:"bindings"`
	Watch    bool          `mapstructure:"watch"`
	Strict   bool          `mapstructure:"strict"`
	Logging  LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig mirrors the logging flags.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewAppViper returns a viper instance with defaults and LUNAR_* environment
// bindings. Callers bind their command-line flags on top of it.
func NewAppViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("bindings", DefaultBindingsFile)
	v.SetDefault("watch", false)
	v.SetDefault("strict", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	if err := v.BindEnv("logging.level", "LUNAR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LUNAR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LUNAR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LUNAR_LOG_FORMAT: %w", err)
	}
	return v, nil
}

// LoadApp decodes the app settings from v.
func LoadApp(v *viper.Viper) (*App, error) {
	app := &App{}
	if err := v.Unmarshal(app); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	app.Logging.Level = strings.ToLower(app.Logging.Level)
	app.Logging.Format = strings.ToLower(app.Logging.Format)
	return app, nil
}
