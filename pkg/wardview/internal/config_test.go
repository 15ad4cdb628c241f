package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wardview.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "Dashboard", cfg.StartView)
	assert.Equal(t, 50, cfg.HistoryWarnDepth)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
log_path = "/tmp/wardview/test.log"
locale = "es"
start_view = "PatientList"
history_warn_depth = 5
theme = "light"
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:         "debug",
		LogPath:          "/tmp/wardview/test.log",
		Locale:           "es",
		StartView:        "PatientList",
		HistoryWarnDepth: 5,
		Theme:            "light",
	}, cfg)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
locale = "es"
history_warn_depth = 5
`)
	t.Setenv("WARDVIEW_LOCALE", "en")
	t.Setenv("WARDVIEW_HISTORY_WARN_DEPTH", "0")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Zero(t, cfg.HistoryWarnDepth)
	assert.Equal(t, "info", cfg.LogLevel, "untouched keys keep their default")
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		wantErr string
	}{
		{name: "malformed toml", body: "locale = ", wantErr: "decode config"},
		{name: "unknown key", body: `colour = "red"`, wantErr: "unknown keys"},
		{name: "bad env", env: map[string]string{"WARDVIEW_HISTORY_WARN_DEPTH": "deep"}, wantErr: "parse env:"},
		{name: "negative depth", body: "history_warn_depth = -1", wantErr: "must not be negative"},
		{name: "empty start view", body: `start_view = ""`, wantErr: "start_view"},
		{name: "unknown theme", env: map[string]string{"WARDVIEW_THEME": "neon"}, wantErr: `unknown theme "neon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}

			_, err := LoadConfig(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
