package removeEvent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventSignup/internal/lib/api/request"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRemover
type EventRemover interface {
	RemoveEvent(ctx context.Context, id string) error
}

// New deletes a live event and its participants without archiving it.
func New(log *slog.Logger, tr response.Translator, remover EventRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.removeEvent.New"

		log := log.With(slog.String("op", op))

		eventID, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err = remover.RemoveEvent(r.Context(), eventID); err != nil {
			log.Error("failed to remove event", slog.String("event_id", eventID), sl.Err(err))
			response.Fail(w, r, tr, request.Locale(r), err)
			return
		}

		log.Info("event removed", slog.String("event_id", eventID))

		render.JSON(w, r, response.OK())
	}
}
