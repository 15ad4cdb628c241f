package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslatorTitles(t *testing.T) {
	tests := []struct {
		locale string
		tag    language.Tag
		title  string
	}{
		{locale: "en", tag: language.English, title: "Patients"},
		{locale: "es", tag: language.Spanish, title: "Pacientes"},
		{locale: "es-MX", tag: language.Spanish, title: "Pacientes"},
		{locale: "fr", tag: language.English, title: "Patients"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			tr, err := NewTranslator(tt.locale)
			require.NoError(t, err)

			assert.Equal(t, tt.tag, tr.Tag())
			assert.Equal(t, tt.title, tr.Title("PatientList"))
		})
	}
}

func TestTranslatorUnknownHandleFallsBack(t *testing.T) {
	tr, err := NewTranslator("en")
	require.NoError(t, err)

	assert.Equal(t, "Pharmacy", tr.Title("Pharmacy"))
	assert.Equal(t, "NoSuchMessage", tr.Message("NoSuchMessage", nil))
}

func TestTranslatorMessageTemplate(t *testing.T) {
	tr, err := NewTranslator("en")
	require.NoError(t, err)

	msg := tr.Message("ErrorInitialization", map[string]any{
		"Title":  "Patient",
		"Reason": "patient not found",
	})

	assert.Equal(t, "Could not open Patient: patient not found", msg)
}

func TestNewTranslatorRejectsBadLocale(t *testing.T) {
	_, err := NewTranslator("not a locale!")

	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewStylesUsesThemePadding(t *testing.T) {
	theme := DefaultTheme()
	theme.Padding = UniformPadding(2)

	styles := NewStyles(theme)

	top, right, bottom, left := styles.Screen.GetPadding()
	assert.Equal(t, []int{2, 2, 2, 2}, []int{top, right, bottom, left})
}

func TestThemeByName(t *testing.T) {
	theme, err := ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)

	theme, err = ThemeByName("light")
	require.NoError(t, err)
	assert.Equal(t, UniformPadding(1), theme.Padding)

	_, err = ThemeByName("neon")
	assert.EqualError(t, err, `unknown theme "neon"`)
}
