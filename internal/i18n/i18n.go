package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var builtinLocales embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations loads the built-in message tables and then any
// active.*.toml file in localesDir, which may override them. An empty
// localesDir loads only the built-in tables.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("language is required")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	builtin, err := fs.Glob(builtinLocales, "locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading built-in locales: %w", err)
	}
	for _, name := range builtin {
		data, err := builtinLocales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("error reading locale %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, fmt.Errorf("error parsing locale %s: %w", name, err)
		}
	}

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, defaultLang),
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
