package addParticipant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventSignup/internal/lib/api/request"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/models"
)

// Request is a signup form. EventID must name the event in the URL.
type Request struct {
	EventID  string            `json:"event_id" validate:"required"`
	Name     string            `json:"name" validate:"required"`
	Email    string            `json:"email" validate:"omitempty,email"`
	Gender   string            `json:"gender,omitempty"`
	Meal     string            `json:"meal,omitempty"`
	Drink    string            `json:"drink,omitempty"`
	Quota    string            `json:"quota,omitempty"`
	IsMember bool              `json:"is_member"`
	HasPaid  bool              `json:"has_paid"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Response struct {
	response.Response
	Participant models.Participant `json:"participant"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantSigner
type ParticipantSigner interface {
	Signup(ctx context.Context, eventID string, participant models.Participant, locale models.Locale) (models.Participant, error)
}

func New(log *slog.Logger, tr response.Translator, signer ParticipantSigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.participant.addParticipant.New"

		log := log.With(slog.String("op", op))

		eventID, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		locale := request.Locale(r)

		participant, err := signer.Signup(r.Context(), eventID, req.toParticipant(), locale)
		if err != nil {
			log.Info("signup failed", sl.Err(err))
			response.Fail(w, r, tr, locale, err)
			return
		}

		log.Info("participant signed up", slog.String("participant_id", participant.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response:    response.OK(),
			Participant: participant,
		})
	}
}

func (req Request) toParticipant() models.Participant {
	return models.Participant{
		EventID:  req.EventID,
		Name:     req.Name,
		Email:    req.Email,
		Gender:   req.Gender,
		Meal:     req.Meal,
		Drink:    req.Drink,
		Quota:    req.Quota,
		IsMember: req.IsMember,
		HasPaid:  req.HasPaid,
		Metadata: req.Metadata,
	}
}
