package getArchives

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventSignup/internal/lib/api/request"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/models"
)

type ArchivesResponse struct {
	response.Response
	Archives []models.ArchivedEvent `json:"archives"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArchiveLister
type ArchiveLister interface {
	ListArchives(ctx context.Context, ownerID string) ([]models.ArchivedEvent, error)
}

func New(log *slog.Logger, tr response.Translator, lister ArchiveLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.archive.getArchives.New"

		owner := r.URL.Query().Get("owner")

		log := log.With(slog.String("op", op), slog.String("owner", owner))

		archived, err := lister.ListArchives(r.Context(), owner)
		if err != nil {
			log.Error("failed to get archived events", sl.Err(err))
			response.Fail(w, r, tr, request.Locale(r), err)
			return
		}

		log.Info("archived events retrieved", slog.Int("count", len(archived)))

		if archived == nil {
			archived = []models.ArchivedEvent{}
		}

		render.JSON(w, r, ArchivesResponse{
			Response: response.OK(),
			Archives: archived,
		})
	}
}
