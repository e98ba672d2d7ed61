package deleteArchive

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventSignup/internal/lib/api/request"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArchiveDeleter
type ArchiveDeleter interface {
	DeleteArchive(ctx context.Context, id string) error
}

func New(log *slog.Logger, tr response.Translator, deleter ArchiveDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.archive.deleteArchive.New"

		log := log.With(slog.String("op", op))

		archiveID, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid archive id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err = deleter.DeleteArchive(r.Context(), archiveID); err != nil {
			log.Error("failed to delete archived event", slog.String("archive_id", archiveID), sl.Err(err))
			response.Fail(w, r, tr, request.Locale(r), err)
			return
		}

		log.Info("archived event deleted", slog.String("archive_id", archiveID))

		render.JSON(w, r, response.OK())
	}
}
