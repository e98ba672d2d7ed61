package saveEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventSignup/internal/lib/api/request"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/models"
)

// Request creates an event, or edits the event with ID when it is set.
type Request struct {
	ID              string            `json:"id,omitempty" validate:"omitempty,uuid"`
	Name            string            `json:"name" validate:"required"`
	Place           string            `json:"place"`
	Description     string            `json:"description"`
	StartDate       time.Time         `json:"start_date" validate:"required"`
	EndDate         *time.Time        `json:"end_date,omitempty"`
	SignupOpensAt   *time.Time        `json:"signup_opens_at,omitempty"`
	SignupClosesAt  *time.Time        `json:"signup_closes_at,omitempty"`
	MinParticipants *int              `json:"min_participants,omitempty" validate:"omitempty,min=0"`
	MaxParticipants *int              `json:"max_participants,omitempty" validate:"omitempty,min=1"`
	OwnerID         string            `json:"owner_id" validate:"required"`
	BannerImage     string            `json:"banner_image,omitempty"`
	Quotas          map[string]int    `json:"quotas,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type Response struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSaver
type EventSaver interface {
	SaveEvent(ctx context.Context, event models.Event, locale models.Locale) (models.Event, error)
}

func New(log *slog.Logger, tr response.Translator, saver EventSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.saveEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("name", req.Name), slog.String("id", req.ID))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		locale := request.Locale(r)

		event, err := saver.SaveEvent(r.Context(), req.toEvent(), locale)
		if err != nil {
			log.Error("failed to save event", sl.Err(err))
			response.Fail(w, r, tr, locale, err)

			return
		}

		log.Info("event saved", slog.String("event_id", event.ID))

		responseOK(w, r, event)
	}
}

func (req Request) toEvent() models.Event {
	return models.Event{
		ID:          req.ID,
		Name:        req.Name,
		Place:       req.Place,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		SignupWindow: models.SignupWindow{
			OpensAt:  req.SignupOpensAt,
			ClosesAt: req.SignupClosesAt,
		},
		MinParticipants: req.MinParticipants,
		MaxParticipants: req.MaxParticipants,
		OwnerID:         req.OwnerID,
		BannerImage:     req.BannerImage,
		Quotas:          req.Quotas,
		Metadata:        req.Metadata,
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Event:    event,
	})
}
