package removeParticipant

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantRemover
type ParticipantRemover interface {
	RemoveParticipant(ctx context.Context, eventID, participantID string, locale models.Locale) error
}

func New(log *slog.Logger, tr response.Translator, remover ParticipantRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.participant.removeParticipant.New"

		log := log.With(slog.String("op", op))

		eventID, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		participantID, err := request.ID(r, "participantID")
		if err != nil {
			log.Error("invalid participant id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.String("event_id", eventID), slog.String("participant_id", participantID))

		locale := request.Locale(r)

		if err = remover.RemoveParticipant(r.Context(), eventID, participantID, locale); err != nil {
			log.Error("failed to remove participant", sl.Err(err))
			response.Fail(w, r, tr, locale, err)
			return
		}

		log.Info("participant removed")

		render.JSON(w, r, response.OK())
	}
}
