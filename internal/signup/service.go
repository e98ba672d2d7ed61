package signup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventSignup/internal/apperr"
	"eventSignup/internal/models"
	"eventSignup/internal/storage"
)

// Service is the interactive signup flow: evaluate, then register.
//
// The count read by EvaluateSignup and the insert done by the Registrar are not
// one transaction. Two requests racing for the last slot can both see an open
// event; the stores settle it with an atomic capacity ceiling on Save.
type Service struct {
	log          *slog.Logger
	events       storage.EventStore
	participants storage.ParticipantStore
	registrar    *Registrar
	now          func() time.Time
}

func NewService(
	log *slog.Logger,
	events storage.EventStore,
	participants storage.ParticipantStore,
	registrar *Registrar,
) *Service {
	return &Service{
		log:          log,
		events:       events,
		participants: participants,
		registrar:    registrar,
		now:          time.Now,
	}
}

func (s *Service) EvaluateSignup(ctx context.Context, eventID string) (Decision, error) {
	const op = "signup.Service.EvaluateSignup"

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return Decision{}, lookupError(op, err)
	}

	count, err := s.participants.CountByEvent(ctx, eventID)
	if err != nil {
		return Decision{}, fmt.Errorf("%s: %w", op, err)
	}

	return Evaluate(event, count, s.now()), nil
}

// Signup evaluates eligibility and, when open, registers the participant.
// A closed decision is returned as a Conflict carrying the decision's message.
func (s *Service) Signup(
	ctx context.Context,
	eventID string,
	participant models.Participant,
	locale models.Locale,
) (models.Participant, error) {
	const op = "signup.Service.Signup"

	if participant.EventID != eventID {
		return models.Participant{}, apperr.Mismatch("signup.event_mismatch", ErrEventMismatch)
	}

	d, err := s.EvaluateSignup(ctx, eventID)
	if err != nil {
		return models.Participant{}, err
	}

	if !d.Allowed() {
		s.log.Info("signup rejected",
			slog.String("op", op),
			slog.String("event_id", eventID),
			slog.String("outcome", d.Outcome.String()),
		)
		return models.Participant{}, apperr.Conflict(d.MessageKey(), fmt.Errorf("%w: %s", ErrSignupRejected, d.Outcome)).
			With(d.TemplateData())
	}

	return s.registrar.AddParticipant(ctx, eventID, participant, locale)
}

// RemoveParticipant delegates to the Registrar.
func (s *Service) RemoveParticipant(ctx context.Context, eventID, participantID string, locale models.Locale) error {
	return s.registrar.RemoveParticipant(ctx, eventID, participantID, locale)
}
