package getArchives

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventSignup/internal/http-server/handlers/archive/getArchives/mocks"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/models"
)

func TestGetArchivesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr := i18n.NewTranslator(logger, "en")

	archived := []models.ArchivedEvent{
		{ID: "a1", OriginalOwner: "owner-1", OriginalEvent: models.Event{Name: "Party"}},
		{ID: "a2", OriginalOwner: "owner-2", OriginalEvent: models.Event{Name: "Dinner"}},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.ArchiveLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "All archives",
			url:  "/archives",
			mockSetup: func(m *mocks.ArchiveLister) {
				m.On("ListArchives", mock.Anything, "").Return(archived, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ArchivesResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.Len(t, resp.Archives, 2)
				assert.Equal(t, "Party", resp.Archives[0].OriginalEvent.Name)
			},
		},
		{
			name: "By owner",
			url:  "/archives?owner=owner-2",
			mockSetup: func(m *mocks.ArchiveLister) {
				m.On("ListArchives", mock.Anything, "owner-2").Return(archived[1:], nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ArchivesResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.Len(t, resp.Archives, 1)
				assert.Equal(t, "a2", resp.Archives[0].ID)
			},
		},
		{
			name: "Empty",
			url:  "/archives",
			mockSetup: func(m *mocks.ArchiveLister) {
				m.On("ListArchives", mock.Anything, "").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","archives":[]}`,
		},
		{
			name: "Internal server error",
			url:  "/archives",
			mockSetup: func(m *mocks.ArchiveLister) {
				m.On("ListArchives", mock.Anything, "").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Something went wrong."}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewArchiveLister(t)
			tc.mockSetup(lister)

			handler := New(logger, tr, lister)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
