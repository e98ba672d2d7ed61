package signupStatus

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventSignup/internal/lib/api/request"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/signup"
)

type SignupStatusResponse struct {
	response.Response
	Outcome string `json:"outcome"`
	Allowed bool   `json:"allowed"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SignupEvaluator
type SignupEvaluator interface {
	EvaluateSignup(ctx context.Context, eventID string) (signup.Decision, error)
}

// New reports whether a new participant could sign up right now. A closed
// signup is a normal answer here, not an error.
func New(log *slog.Logger, tr response.Translator, evaluator SignupEvaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.signupStatus.New"

		log := log.With(slog.String("op", op))

		eventID, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid event id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		locale := request.Locale(r)

		d, err := evaluator.EvaluateSignup(r.Context(), eventID)
		if err != nil {
			log.Error("failed to evaluate signup", slog.String("event_id", eventID), sl.Err(err))
			response.Fail(w, r, tr, locale, err)
			return
		}

		log.Info("signup evaluated",
			slog.String("event_id", eventID),
			slog.String("outcome", d.Outcome.String()),
		)

		render.JSON(w, r, SignupStatusResponse{
			Response: response.OK(),
			Outcome:  d.Outcome.String(),
			Allowed:  d.Allowed(),
			Message:  tr.T(locale.Language, d.MessageKey(), i18n.PresentTimes(d.TemplateData(), locale.TimeZone)),
		})
	}
}
