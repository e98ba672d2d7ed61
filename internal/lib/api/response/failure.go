package response

import (
	"net/http"

	"github.com/go-chi/render"

	"eventSignup/internal/apperr"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/models"
)

type Translator interface {
	T(locale, key string, data map[string]any) string
}

func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindMismatch, apperr.KindInvalid:
		return http.StatusBadRequest
	case apperr.KindStorageFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as a localized error response. Errors without a kind are
// reported as unexpected, with no detail leaked to the client.
func Fail(w http.ResponseWriter, r *http.Request, tr Translator, locale models.Locale, err error) {
	key := "error.unexpected"
	var data map[string]any

	e, ok := apperr.As(err)
	if ok {
		key = e.Key
		data = e.Data
		if key == "" && e.Kind == apperr.KindStorageFailure {
			key = "error.storage"
		}
	}

	render.Status(r, StatusFor(apperr.KindOf(err)))
	render.JSON(w, r, Error(tr.T(locale.Language, key, i18n.PresentTimes(data, locale.TimeZone))))
}
