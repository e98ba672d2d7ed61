// Package events manages the live event lifecycle outside of signup and archival.
package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventSignup/internal/apperr"
	"eventSignup/internal/models"
	"eventSignup/internal/notify"
	"eventSignup/internal/storage"
)

type Service struct {
	log          *slog.Logger
	events       storage.EventStore
	participants storage.ParticipantStore
	publisher    notify.Publisher
	now          func() time.Time
}

func NewService(
	log *slog.Logger,
	events storage.EventStore,
	participants storage.ParticipantStore,
	publisher notify.Publisher,
) *Service {
	return &Service{
		log:          log,
		events:       events,
		participants: participants,
		publisher:    publisher,
		now:          time.Now,
	}
}

// SaveEvent creates an event, or edits one when event.ID is set. Edits keep the
// original form metadata.
func (s *Service) SaveEvent(ctx context.Context, event models.Event, locale models.Locale) (models.Event, error) {
	const op = "events.Service.SaveEvent"

	if err := event.Validate(); err != nil {
		return models.Event{}, apperr.Invalid("event.invalid", err).With(map[string]any{"Reason": err.Error()})
	}

	if event.ID != "" {
		existing, err := s.events.FindByID(ctx, event.ID)
		if err != nil {
			return models.Event{}, lookupError(op, err)
		}
		event.Form = existing.Form
	} else {
		event.Form.CreatedAt = s.now().UTC()
		if event.Form.CreatedBy == "" {
			event.Form.CreatedBy = event.OwnerID
		}
	}

	saved, err := s.events.Save(ctx, event)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event saved", slog.String("op", op), slog.String("event_id", saved.ID))

	s.publisher.Publish(notify.EventSaved{Event: saved, Locale: locale})

	return saved, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (models.Event, []models.Participant, error) {
	const op = "events.Service.GetEvent"

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return models.Event{}, nil, lookupError(op, err)
	}

	participants, err := s.participants.FindAllByEvent(ctx, id)
	if err != nil {
		return models.Event{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, participants, nil
}

// ListEvents returns every live event, or only ownerID's when it is set.
func (s *Service) ListEvents(ctx context.Context, ownerID string) ([]models.Event, error) {
	const op = "events.Service.ListEvents"

	var (
		events []models.Event
		err    error
	)
	if ownerID != "" {
		events, err = s.events.FindAllByOwner(ctx, ownerID)
	} else {
		events, err = s.events.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// RemoveEvent deletes a live event without archiving it. Participants go first so
// none is left pointing at a missing event.
func (s *Service) RemoveEvent(ctx context.Context, id string) error {
	const op = "events.Service.RemoveEvent"

	exists, err := s.events.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return apperr.NotFound("event.not_found", storage.ErrEventNotFound)
	}

	if err = s.participants.DeleteAllByEvent(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.events.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event removed", slog.String("op", op), slog.String("event_id", id))

	return nil
}

func lookupError(op string, err error) error {
	if errors.Is(err, storage.ErrEventNotFound) {
		return apperr.NotFound("event.not_found", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
