package internal

import (
	"embed"
	"fmt"
	"path"
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

	localeMu  sync.RWMutex
	locale    = language.English
	localizer *i18n.Localizer
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			bundleErr = err
			return
		}
		for _, entry := range entries {
			name := path.Join("locales", entry.Name())
			data, err := localeFS.ReadFile(name)
			if err != nil {
				bundleErr = err
				return
			}
			if _, err := b.ParseMessageFileBytes(data, name); err != nil {
				bundleErr = fmt.Errorf("parsing %s: %w", name, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// SupportedLocales returns the languages with an embedded message file.
func SupportedLocales() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return []language.Tag{language.English}
	}
	return b.LanguageTags()
}

// ParseLocale validates a BCP 47 tag.
func ParseLocale(tag string) (language.Tag, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	return parsed, nil
}

// SetLocale switches the language of framework strings. Tags without an
// embedded translation fall back to English message by message.
func SetLocale(tag string) error {
	parsed, err := ParseLocale(tag)
	if err != nil {
		return err
	}
	b, err := loadBundle()
	if err != nil {
		return err
	}

	localeMu.Lock()
	defer localeMu.Unlock()
	locale = parsed
	localizer = i18n.NewLocalizer(b, parsed.String(), language.English.String())
	return nil
}

// Locale returns the active language.
func Locale() language.Tag {
	localeMu.RLock()
	defer localeMu.RUnlock()
	return locale
}

func currentLocalizer() *i18n.Localizer {
	localeMu.RLock()
	l := localizer
	localeMu.RUnlock()
	if l != nil {
		return l
	}

	b, err := loadBundle()
	if err != nil {
		return nil
	}
	localeMu.Lock()
	defer localeMu.Unlock()
	if localizer == nil {
		localizer = i18n.NewLocalizer(b, locale.String())
	}
	return localizer
}

// Localize renders message id with data. Missing messages render as the id
// so a broken catalogue never blanks the UI.
func Localize(id string, data map[string]any) string {
	l := currentLocalizer()
	if l == nil {
		return id
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		if msg != "" {
			// Fallback language matched.
			return msg
		}
		GetInternalLogger().Debug("Missing translation", "id", id, "locale", Locale().String(), "error", err)
		return id
	}
	return msg
}

// T renders a message without template data.
func T(id string) string {
	return Localize(id, nil)
}
