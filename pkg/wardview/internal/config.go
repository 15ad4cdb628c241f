package internal

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/wardview/wardview/pkg/wardview/constants"
)

// Config holds the shell settings. Values come from the defaults, then the TOML
// file, then WARDVIEW_* environment variables, later sources winning.
type Config struct {
	LogLevel         string `toml:"log_level" env:"WARDVIEW_LOG_LEVEL"`
	LogPath          string `toml:"log_path" env:"WARDVIEW_LOG_PATH"`
	Locale           string `toml:"locale" env:"WARDVIEW_LOCALE"`
	StartView        string `toml:"start_view" env:"WARDVIEW_START_VIEW"`
	HistoryWarnDepth int    `toml:"history_warn_depth" env:"WARDVIEW_HISTORY_WARN_DEPTH"` // 0 disables the warning
	Theme            string `toml:"theme" env:"WARDVIEW_THEME"`                           // "default" or "light"
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LogLevel:         constants.DefaultLogLevel,
		Locale:           constants.DefaultLocale,
		StartView:        constants.DefaultStartView,
		HistoryWarnDepth: constants.DefaultHistoryWarnDepth,
		Theme:            constants.DefaultTheme,
	}
}

// LoadConfig builds the configuration. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("decode config %s: unknown keys %v", path, undecoded)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.HistoryWarnDepth < 0 {
		return Config{}, fmt.Errorf("history_warn_depth must not be negative, got %d", cfg.HistoryWarnDepth)
	}
	if cfg.StartView == "" {
		return Config{}, fmt.Errorf("start_view must not be empty")
	}
	if _, err := ThemeByName(cfg.Theme); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
