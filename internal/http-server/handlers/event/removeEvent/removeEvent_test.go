package removeEvent

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
	"eventSignup/internal/http-server/handlers/event/removeEvent/mocks"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/storage"
)

const eventID = "7d8f3c1e-1a7b-4c39-9a59-2b8d1f0f6c11"

func TestRemoveEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr := i18n.NewTranslator(logger, "en")

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: eventID,
			mockSetup: func(m *mocks.EventRemover) {
				m.On("RemoveEvent", mock.Anything, eventID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "abc",
			mockSetup:      func(m *mocks.EventRemover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name:    "Event not found",
			eventID: eventID,
			mockSetup: func(m *mocks.EventRemover) {
				m.On("RemoveEvent", mock.Anything, eventID).
					Return(apperr.NotFound("event.not_found", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"The event does not exist."}`,
		},
		{
			name:    "Internal server error",
			eventID: eventID,
			mockSetup: func(m *mocks.EventRemover) {
				m.On("RemoveEvent", mock.Anything, eventID).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Something went wrong."}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remover := mocks.NewEventRemover(t)
			tc.mockSetup(remover)

			router := chi.NewRouter()
			router.Delete("/events/{id}", New(logger, tr, remover))

			req, err := http.NewRequest("DELETE", "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
