package retentionSweep

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventSignup/internal/lib/api/request"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"
)

type Response struct {
	response.Response
	Removed int64 `json:"removed"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArchiveSweeper
type ArchiveSweeper interface {
	RemoveArchivedEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	RemoveArchivedEventsOlderThanOneYear(ctx context.Context) (int64, error)
}

// New deletes archive records archived before the RFC 3339 "before" parameter,
// or older than one year when it is absent.
func New(log *slog.Logger, tr response.Translator, sweeper ArchiveSweeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.archive.retentionSweep.New"

		log := log.With(slog.String("op", op))

		var (
			removed int64
			err     error
		)

		if raw := r.URL.Query().Get("before"); raw != "" {
			cutoff, parseErr := time.Parse(time.RFC3339, raw)
			if parseErr != nil {
				log.Error("invalid before parameter", sl.Err(parseErr))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid before parameter"))
				return
			}
			removed, err = sweeper.RemoveArchivedEventsBefore(r.Context(), cutoff)
		} else {
			removed, err = sweeper.RemoveArchivedEventsOlderThanOneYear(r.Context())
		}
		if err != nil {
			log.Error("failed to remove archived events", sl.Err(err))
			response.Fail(w, r, tr, request.Locale(r), err)
			return
		}

		log.Info("retention sweep finished", slog.Int64("removed", removed))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Removed:  removed,
		})
	}
}
