package request

import (
	"net/http"

	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/models"
)

const HeaderTimeZone = "X-Time-Zone"

// Locale reads the caller's presentation preferences from Accept-Language and X-Time-Zone.
func Locale(r *http.Request) models.Locale {
	return models.Locale{
		Language: i18n.MatchLocale(r.Header.Get("Accept-Language")),
		TimeZone: i18n.Location(r.Header.Get(HeaderTimeZone)).String(),
	}
}
