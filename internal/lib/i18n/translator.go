// Package i18n renders user-facing messages for a caller's locale.
package i18n

import (
	"embed"
	"log/slog"
	"time"
	_ "time/tzdata"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"eventSignup/internal/lib/logger/sl"
)

//go:embed active.*.toml
var localeFS embed.FS

var supported = []language.Tag{language.English, language.MustParse("nb")}

var matcher = language.NewMatcher(supported)

// Translator wraps a go-i18n bundle. A Localizer is built per call so no
// request-scoped state is shared between callers.
type Translator struct {
	bundle          *goi18n.Bundle
	defaultLanguage language.Tag
	log             *slog.Logger
}

func NewTranslator(log *slog.Logger, defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.nb.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Error("failed to load message file", slog.String("file", file), sl.Err(err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}
}

// T renders key for locale, falling back to the default language and then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := goi18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Warn("localize failed",
			slog.String("key", key),
			slog.Any("languages", languages),
			sl.Err(err),
		)
		return key
	}

	return msg
}

// MatchLocale picks the best supported language for an Accept-Language header.
func MatchLocale(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supported[0].String()
	}

	_, idx, _ := matcher.Match(tags...)

	return supported[idx].String()
}

// Location loads an IANA time zone, falling back to UTC.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}

	return loc
}

// PresentTimes returns a copy of data with every time.Time value rendered in tz.
func PresentTimes(data map[string]any, tz string) map[string]any {
	if len(data) == 0 {
		return data
	}

	loc := Location(tz)
	out := make(map[string]any, len(data))
	for k, v := range data {
		if t, ok := v.(time.Time); ok {
			v = t.In(loc).Format("2006-01-02 15:04 MST")
		}
		out[k] = v
	}

	return out
}
