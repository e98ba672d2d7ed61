package archiveEvent

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

type Response struct {
	response.Response
	Archive models.ArchivedEvent `json:"archive"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventArchiver
type EventArchiver interface {
	ArchiveEvent(ctx context.Context, eventID string, locale models.Locale) (models.ArchivedEvent, error)
}

func New(log *slog.Logger, tr response.Translator, archiver EventArchiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.archive.archiveEvent.New"

		log := log.With(slog.String("op", op))

		eventID, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		locale := request.Locale(r)

		archived, err := archiver.ArchiveEvent(r.Context(), eventID, locale)
		if err != nil {
			log.Error("failed to archive event", sl.Err(err))
			response.Fail(w, r, tr, locale, err)
			return
		}

		log.Info("event archived", slog.String("archive_id", archived.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Archive:  archived,
		})
	}
}
