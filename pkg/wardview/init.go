// Package wardview is the desktop shell core of a hospital-records client.
//
// The interesting part lives in the navigation package: view-models resolved from
// a registry, a back history that restores instances by identity, and change
// notification. This package wires the ambient pieces around it: configuration,
// logging and translations. The screens, records and shell packages build the
// terminal client on top.
package wardview

import (
	"log/slog"
	"os"

	"github.com/wardview/wardview/pkg/wardview/constants"
	"github.com/wardview/wardview/pkg/wardview/internal"
	"github.com/wardview/wardview/pkg/wardview/navigation"
)

// Config holds the shell settings. See LoadConfig.
type Config = internal.Config

// Translator looks up user-facing strings for one language.
type Translator = internal.Translator

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// LoadConfig reads the defaults, then the TOML file at path (skipped when empty),
// then the WARDVIEW_* environment variables.
func LoadConfig(path string) (Config, error) {
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		return Config{}, NewSetupError("load_config", err)
	}
	return cfg, nil
}

// Init configures logging and the theme from cfg and returns the translator
// for cfg.Locale.
// Must be called before GetLogger to take the log path into account.
// If WARDVIEW_DEBUG is set, or in development mode, wardview's own logging is
// turned up to debug.
func Init(cfg Config) (*Translator, error) {
	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	internal.SetRawLogLevel(cfg.LogLevel)

	if os.Getenv(constants.DebugEnvVar) != "" || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}

	tr, err := internal.NewTranslator(cfg.Locale)
	if err != nil {
		return nil, NewSetupError("load_locale", err)
	}

	theme, err := internal.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, NewSetupError("load_theme", err)
	}
	internal.SetTheme(theme)

	internal.GetInternalLogger().Debug("wardview initialized",
		"locale", tr.Tag().String(),
		"start_view", cfg.StartView,
		"theme", cfg.Theme,
		"history_warn_depth", cfg.HistoryWarnDepth,
	)
	return tr, nil
}

// NewNavigator creates a Navigator over resolver with the settings from cfg
// and wardview's internal logger.
func NewNavigator(cfg Config, resolver navigation.Resolver) *navigation.Navigator {
	return navigation.New(resolver).
		WithLogger(internal.GetInternalLogger()).
		WithHistoryWarning(cfg.HistoryWarnDepth)
}

// Close releases the log file.
// Must be called before program exit.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
