// Package internal contains the infrastructure behind wardview's public packages:
// logging, configuration, localization and theming.
// Types and functions in this package are not part of the public API.
package internal
