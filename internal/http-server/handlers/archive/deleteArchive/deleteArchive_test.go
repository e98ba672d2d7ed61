package deleteArchive

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
	"eventSignup/internal/http-server/handlers/archive/deleteArchive/mocks"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/storage"
)

const archiveID = "3f1c0c9e-5b7a-4d2e-8f6a-1c2b3d4e5f60"

func TestDeleteArchiveHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	tr := i18n.NewTranslator(logger, "en")

	testCases := []struct {
		name           string
		archiveID      string
		mockSetup      func(m *mocks.ArchiveDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			archiveID: archiveID,
			mockSetup: func(m *mocks.ArchiveDeleter) {
				m.On("DeleteArchive", mock.Anything, archiveID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid archive ID format",
			archiveID:      "archive-1",
			mockSetup:      func(m *mocks.ArchiveDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name:      "Archive not found",
			archiveID: archiveID,
			mockSetup: func(m *mocks.ArchiveDeleter) {
				m.On("DeleteArchive", mock.Anything, archiveID).
					Return(apperr.NotFound("archive.not_found", storage.ErrArchiveNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"The archived event does not exist."}`,
		},
		{
			name:      "Internal server error",
			archiveID: archiveID,
			mockSetup: func(m *mocks.ArchiveDeleter) {
				m.On("DeleteArchive", mock.Anything, archiveID).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"Something went wrong."}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewArchiveDeleter(t)
			tc.mockSetup(deleter)

			router := chi.NewRouter()
			router.Delete("/archives/{id}", New(logger, tr, deleter))

			req, err := http.NewRequest("DELETE", "/archives/"+tc.archiveID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
