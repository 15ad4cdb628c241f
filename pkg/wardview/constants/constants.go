// Package constants defines shared constants, types, and configuration values
// used throughout wardview.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the configuration loader.
const (
	ConfigPathEnvVar       = "WARDVIEW_CONFIG"
	LogLevelEnvVar         = "WARDVIEW_LOG_LEVEL"
	LogPathEnvVar          = "WARDVIEW_LOG_PATH"
	LocaleEnvVar           = "WARDVIEW_LOCALE"
	StartViewEnvVar        = "WARDVIEW_START_VIEW"
	HistoryWarnDepthEnvVar = "WARDVIEW_HISTORY_WARN_DEPTH"
	ThemeEnvVar            = "WARDVIEW_THEME"
	DebugEnvVar            = "WARDVIEW_DEBUG" // Enables debug output from the internal logger
)

// Configuration defaults.
const (
	DefaultLogDir           = "logs"
	DefaultLogFilename      = "wardview.log"
	DefaultLogLevel         = "info"
	DefaultLocale           = "en"
	DefaultStartView        = "Dashboard"
	DefaultHistoryWarnDepth = 50
	DefaultTheme            = "default"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Action represents an abstract shell action, mapped from key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionOpen
	ActionBack
	ActionHome
	ActionQuit
)

func (a Action) GetName() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionOpen:
		return "Open"
	case ActionBack:
		return "Back"
	case ActionHome:
		return "Home"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
