package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventSignup/internal/apperr"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/models"
	"eventSignup/internal/notify"
	"eventSignup/internal/storage"
)

var (
	ErrEventMismatch  = errors.New("participant belongs to a different event")
	ErrSignupRejected = errors.New("signup rejected")
)

// Registrar adds and removes participants of live events. It does not run the
// eligibility rules; callers evaluate first (see Service.Signup).
type Registrar struct {
	log          *slog.Logger
	events       storage.EventStore
	participants storage.ParticipantStore
	publisher    notify.Publisher
	now          func() time.Time
}

func NewRegistrar(
	log *slog.Logger,
	events storage.EventStore,
	participants storage.ParticipantStore,
	publisher notify.Publisher,
) *Registrar {
	return &Registrar{
		log:          log,
		events:       events,
		participants: participants,
		publisher:    publisher,
		now:          time.Now,
	}
}

// AddParticipant registers participant for eventID. ID and SignupTime are always
// set here, whatever the caller sent.
func (r *Registrar) AddParticipant(
	ctx context.Context,
	eventID string,
	participant models.Participant,
	locale models.Locale,
) (models.Participant, error) {
	const op = "signup.Registrar.AddParticipant"

	log := r.log.With(slog.String("op", op), slog.String("event_id", eventID))

	if participant.EventID != eventID {
		log.Warn("participant event does not match target event", slog.String("participant_event_id", participant.EventID))
		return models.Participant{}, apperr.Mismatch("signup.event_mismatch", ErrEventMismatch)
	}

	event, err := r.events.FindByID(ctx, eventID)
	if err != nil {
		return models.Participant{}, lookupError(op, err)
	}

	participant.ID = uuid.NewString()
	participant.SignupTime = r.now().UTC()

	saved, err := r.participants.Save(ctx, participant)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrEventFull):
			d := Decision{Outcome: Full, EventName: event.Name}
			return models.Participant{}, apperr.Conflict(d.MessageKey(), fmt.Errorf("%w: %w", ErrSignupRejected, err)).
				With(d.TemplateData())
		case errors.Is(err, storage.ErrEventNotFound):
			return models.Participant{}, apperr.NotFound("event.not_found", err)
		default:
			return models.Participant{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("participant added", slog.String("participant_id", saved.ID))

	r.publisher.Publish(notify.SignupSuccessful{Event: event, Participant: saved, Locale: locale})

	return saved, nil
}

// RemoveParticipant cancels a signup. The delete is durable before the
// cancellation notification is queued.
func (r *Registrar) RemoveParticipant(
	ctx context.Context,
	eventID, participantID string,
	locale models.Locale,
) error {
	const op = "signup.Registrar.RemoveParticipant"

	log := r.log.With(
		slog.String("op", op),
		slog.String("event_id", eventID),
		slog.String("participant_id", participantID),
	)

	event, err := r.events.FindByID(ctx, eventID)
	if err != nil {
		return lookupError(op, err)
	}

	participant, err := r.participants.FindByID(ctx, participantID)
	if err != nil {
		return lookupError(op, err)
	}
	if participant.EventID != eventID {
		return apperr.NotFound("participant.not_found", storage.ErrParticipantNotFound)
	}

	if err = r.participants.DeleteByEventAndID(ctx, eventID, participantID); err != nil {
		if errors.Is(err, storage.ErrParticipantNotFound) {
			return apperr.NotFound("participant.not_found", err)
		}
		log.Error("failed to delete participant", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("participant removed")

	r.publisher.Publish(notify.SignupCancelled{Event: event, Participant: participant, Locale: locale})

	return nil
}

func lookupError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrEventNotFound):
		return apperr.NotFound("event.not_found", err)
	case errors.Is(err, storage.ErrParticipantNotFound):
		return apperr.NotFound("participant.not_found", err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
