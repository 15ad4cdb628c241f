package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func getBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		names, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			bundleErr = fmt.Errorf("list message files: %w", err)
			return
		}
		for _, name := range names {
			if _, err := b.LoadMessageFileFS(localeFS, name); err != nil {
				bundleErr = fmt.Errorf("load message file %s: %w", name, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Translator looks up user-facing strings for one language.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewTranslator returns a Translator for the closest supported match of locale
// (a BCP 47 tag such as "es" or "en-GB"). Unsupported languages fall back to English.
func NewTranslator(locale string) (*Translator, error) {
	b, err := getBundle()
	if err != nil {
		return nil, err
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	supported := b.LanguageTags()
	_, index, _ := language.NewMatcher(supported).Match(requested)
	tag := supported[index]

	return &Translator{
		localizer: i18n.NewLocalizer(b, tag.String()),
		tag:       tag,
	}, nil
}

// Tag returns the language the Translator resolved to.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Title returns the display title of a view-model handle.
// Handles without a translation are shown as-is.
func (t *Translator) Title(handle string) string {
	// A message missing from the language comes back in English with an error.
	title, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: "View" + handle})
	if err != nil && title == "" {
		return handle
	}
	return title
}

// Message localizes a message id with optional template data.
// Unknown ids are returned unchanged.
func (t *Translator) Message(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil && msg == "" {
		return id
	}
	return msg
}
