package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventSignup/internal/apperr"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/models"
)

func TestFail(t *testing.T) {
	t.Parallel()

	tr := i18n.NewTranslator(slogdiscard.NewDiscardLogger(), "en")
	opens := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		err            error
		locale         models.Locale
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Not found",
			err:            apperr.NotFound("event.not_found", errors.New("missing")),
			locale:         models.Locale{Language: "en"},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"The event does not exist."}`,
		},
		{
			name: "Conflict with time in caller zone",
			err: apperr.Conflict("signup.not_started", nil).
				With(map[string]any{"EventName": "Party", "OpensAt": opens}),
			locale:         models.Locale{Language: "en", TimeZone: "Europe/Oslo"},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"Signup for Party opens 2026-06-01 10:00 CEST."}`,
		},
		{
			name:           "Mismatch",
			err:            apperr.Mismatch("signup.event_mismatch", nil),
			locale:         models.Locale{Language: "en"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"The participant does not belong to this event."}`,
		},
		{
			name:           "Storage failure without key",
			err:            apperr.StorageFailure("", errors.New("disk")),
			locale:         models.Locale{Language: "en"},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"Error","error":"Storage is unavailable right now. Try again later."}`,
		},
		{
			name:           "Unclassified",
			err:            errors.New("connection refused"),
			locale:         models.Locale{Language: "en"},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Something went wrong."}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			rr := httptest.NewRecorder()

			Fail(rr, req, tr, tc.locale, tc.err)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
