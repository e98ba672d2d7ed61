package signupStatus

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventSignup/internal/apperr"
	"eventSignup/internal/http-server/handlers/event/signupStatus/mocks"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/signup"
	"eventSignup/internal/storage"
)

const eventID = "7d8f3c1e-1a7b-4c39-9a59-2b8d1f0f6c11"

func TestSignupStatusHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr := i18n.NewTranslator(logger, "en")

	opens := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		eventID        string
		headers        map[string]string
		mockSetup      func(m *mocks.SignupEvaluator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Open",
			eventID: eventID,
			mockSetup: func(m *mocks.SignupEvaluator) {
				m.On("EvaluateSignup", mock.Anything, eventID).
					Return(signup.Decision{Outcome: signup.Open, EventName: "Party"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","outcome":"open","allowed":true,"message":"Signup for Party is open."}`,
		},
		{
			name:    "Full",
			eventID: eventID,
			mockSetup: func(m *mocks.SignupEvaluator) {
				m.On("EvaluateSignup", mock.Anything, eventID).
					Return(signup.Decision{Outcome: signup.Full, EventName: "Party"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","outcome":"full","allowed":false,"message":"Party is full."}`,
		},
		{
			name:    "Not started in caller language and zone",
			eventID: eventID,
			headers: map[string]string{"Accept-Language": "nb", "X-Time-Zone": "Europe/Oslo"},
			mockSetup: func(m *mocks.SignupEvaluator) {
				m.On("EvaluateSignup", mock.Anything, eventID).
					Return(signup.Decision{Outcome: signup.NotStarted, EventName: "Fest", ReopensAt: opens}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","outcome":"not_started","allowed":false,"message":"Påmeldingen til Fest åpner 2026-01-15 10:30 CET."}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "nope",
			mockSetup:      func(m *mocks.SignupEvaluator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name:    "Event not found",
			eventID: eventID,
			mockSetup: func(m *mocks.SignupEvaluator) {
				m.On("EvaluateSignup", mock.Anything, eventID).
					Return(signup.Decision{}, apperr.NotFound("event.not_found", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"The event does not exist."}`,
		},
		{
			name:    "Internal server error",
			eventID: eventID,
			mockSetup: func(m *mocks.SignupEvaluator) {
				m.On("EvaluateSignup", mock.Anything, eventID).Return(signup.Decision{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Something went wrong."}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			evaluator := mocks.NewSignupEvaluator(t)
			tc.mockSetup(evaluator)

			router := chi.NewRouter()
			router.Get("/events/{id}/signup", New(logger, tr, evaluator))

			req, err := http.NewRequest("GET", "/events/"+tc.eventID+"/signup", nil)
			require.NoError(t, err)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
