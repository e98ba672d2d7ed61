package getEventInfo

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

type EventInfoResponse struct {
	response.Response
	Event        *models.Event        `json:"event"`
	Participants []models.Participant `json:"participants"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id string) (models.Event, []models.Participant, error)
}

func New(log *slog.Logger, tr response.Translator, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		eventID, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, participants, err := info.GetEvent(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event information", sl.Err(err))
			response.Fail(w, r, tr, request.Locale(r), err)
			return
		}

		log.Info("event info successfully received", slog.Int("participants", len(participants)))

		responseOK(w, r, &event, participants)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, participants []models.Participant) {
	if participants == nil {
		participants = []models.Participant{}
	}

	render.JSON(w, r, EventInfoResponse{
		Response:     response.OK(),
		Event:        event,
		Participants: participants,
	})
}
