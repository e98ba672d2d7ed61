package removeParticipant

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventSignup/internal/apperr"
	"eventSignup/internal/http-server/handlers/participant/removeParticipant/mocks"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/models"
	"eventSignup/internal/storage"
)

const (
	eventID       = "7d8f3c1e-1a7b-4c39-9a59-2b8d1f0f6c11"
	participantID = "0b6a4a53-7f0e-4b8e-9d43-7c2f5f0e9a01"
)

func TestRemoveParticipantHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr := i18n.NewTranslator(logger, "en")
	locale := models.Locale{Language: "en", TimeZone: "UTC"}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.ParticipantRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/events/" + eventID + "/participants/" + participantID,
			mockSetup: func(m *mocks.ParticipantRemover) {
				m.On("RemoveParticipant", mock.Anything, eventID, participantID, locale).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid participant ID",
			url:            "/events/" + eventID + "/participants/1",
			mockSetup:      func(m *mocks.ParticipantRemover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name: "Participant not found",
			url:  "/events/" + eventID + "/participants/" + participantID,
			mockSetup: func(m *mocks.ParticipantRemover) {
				m.On("RemoveParticipant", mock.Anything, eventID, participantID, locale).
					Return(apperr.NotFound("participant.not_found", storage.ErrParticipantNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"The participant does not exist."}`,
		},
		{
			name: "Event not found",
			url:  "/events/" + eventID + "/participants/" + participantID,
			mockSetup: func(m *mocks.ParticipantRemover) {
				m.On("RemoveParticipant", mock.Anything, eventID, participantID, locale).
					Return(apperr.NotFound("event.not_found", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"The event does not exist."}`,
		},
		{
			name: "Internal server error",
			url:  "/events/" + eventID + "/participants/" + participantID,
			mockSetup: func(m *mocks.ParticipantRemover) {
				m.On("RemoveParticipant", mock.Anything, eventID, participantID, locale).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Something went wrong."}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remover := mocks.NewParticipantRemover(t)
			tc.mockSetup(remover)

			router := chi.NewRouter()
			router.Delete("/events/{id}/participants/{participantID}", New(logger, tr, remover))

			req, err := http.NewRequest("DELETE", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
