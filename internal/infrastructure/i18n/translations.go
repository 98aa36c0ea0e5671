package i18n

import (
	"embed"
	"fmt"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"venuehub/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// Translator serves the embedded active.<lang>.toml catalogues. Messages
// missing in a locale fall back to the default locale, then to the key.
type Translator struct {
	bundle     *i18n.Bundle
	fallback   string
	supported  []language.Tag
	matcher    language.Matcher
	localizers map[string]*i18n.Localizer
}

// NewTranslator loads every embedded catalogue. defaultLocale (e.g. "en")
// answers requests no catalogue matches. A catalogue that fails to load is
// an error: a partial bundle would render raw keys.
func NewTranslator(defaultLocale string) (*Translator, error) {
	def, err := language.Parse(defaultLocale)
	if err != nil {
		def = language.English
	}
	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("i18n: list catalogues: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, f.Name()); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", f.Name(), err)
		}
	}

	tr := &Translator{
		bundle:     bundle,
		fallback:   baseOf(def),
		supported:  []language.Tag{def},
		localizers: map[string]*i18n.Localizer{},
	}
	for _, tag := range bundle.LanguageTags() {
		if tag != def {
			tr.supported = append(tr.supported, tag)
		}
	}
	for _, tag := range tr.supported {
		name := baseOf(tag)
		tr.localizers[name] = i18n.NewLocalizer(bundle, name, tr.fallback)
	}
	tr.matcher = language.NewMatcher(tr.supported)
	return tr, nil
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Match picks the best supported locale for an Accept-Language header.
func (t *Translator) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, idx, _ := t.matcher.Match(tags...)
	return baseOf(t.supported[idx])
}

// T renders key in locale with data filling the template placeholders.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	loc, ok := t.localizers[locale]
	if !ok {
		loc = t.localizers[t.fallback]
	}
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: %s (locale=%s): %v", key, locale, err)
		return key
	}
	return msg
}
