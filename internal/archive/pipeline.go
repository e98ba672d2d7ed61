// Package archive moves past events out of live storage and later purges the archive.
package archive

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
	ErrImageMoveFailed = errors.New("banner image move failed")
	ErrInvalidCutoff   = errors.New("retention cutoff must be a non-negative number of days in the past")
)

type ImageRelocator interface {
	Move(sourcePath string) (string, error)
}

type Pipeline struct {
	log             *slog.Logger
	events          storage.EventStore
	participants    storage.ParticipantStore
	archives        storage.ArchiveStore
	images          ImageRelocator
	publisher       notify.Publisher
	relocateInBatch bool
	now             func() time.Time
}

func NewPipeline(
	log *slog.Logger,
	events storage.EventStore,
	participants storage.ParticipantStore,
	archives storage.ArchiveStore,
	images ImageRelocator,
	publisher notify.Publisher,
	relocateInBatch bool,
) *Pipeline {
	return &Pipeline{
		log:             log,
		events:          events,
		participants:    participants,
		archives:        archives,
		images:          images,
		publisher:       publisher,
		relocateInBatch: relocateInBatch,
		now:             time.Now,
	}
}

// BatchResult reports a sweep. ImageFailures is keyed by original event id and
// only filled when batch image relocation is enabled.
type BatchResult struct {
	Cutoff        time.Time
	Archived      []models.ArchivedEvent
	ImageFailures map[string]error
}

// ArchiveEvent snapshots one live event into the archive and removes it together
// with its participants.
//
// If the banner image cannot be moved the archive record stays written, the live
// event is left in place and a StorageFailure wrapping ErrImageMoveFailed is returned.
func (p *Pipeline) ArchiveEvent(ctx context.Context, eventID string, locale models.Locale) (models.ArchivedEvent, error) {
	const op = "archive.Pipeline.ArchiveEvent"

	log := p.log.With(slog.String("op", op), slog.String("event_id", eventID))

	event, err := p.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return models.ArchivedEvent{}, apperr.NotFound("event.not_found", err)
		}
		return models.ArchivedEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	count, err := p.participants.CountByEvent(ctx, eventID)
	if err != nil {
		return models.ArchivedEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	archived := snapshot(event, count, p.now())

	if err = p.archives.Save(ctx, archived); err != nil {
		return models.ArchivedEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	if event.BannerImage != "" {
		dst, err := p.images.Move(event.BannerImage)
		if err != nil {
			log.Error("failed to move banner image", slog.String("archive_id", archived.ID), sl.Err(err))
			return models.ArchivedEvent{}, imageMoveError(err)
		}
		log.Debug("banner image moved", slog.String("to", dst))
	}

	if err = p.participants.DeleteAllByEvent(ctx, eventID); err != nil {
		return models.ArchivedEvent{}, fmt.Errorf("%s: %w", op, err)
	}
	if err = p.events.DeleteByID(ctx, eventID); err != nil {
		return models.ArchivedEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event archived",
		slog.String("archive_id", archived.ID),
		slog.Int("participants", archived.NumberOfParticipants),
	)

	p.publisher.Publish(notify.EventArchived{Archive: archived, Locale: locale})

	return archived, nil
}

// ArchivePastEvents archives every live event that started or ended more than
// retentionCutoffDays ago.
//
// Banner images are not relocated here unless the pipeline was built with
// relocateInBatch; the single-event path always relocates.
func (p *Pipeline) ArchivePastEvents(ctx context.Context, retentionCutoffDays int) (BatchResult, error) {
	const op = "archive.Pipeline.ArchivePastEvents"

	if retentionCutoffDays < 0 {
		return BatchResult{}, apperr.Invalid("archive.invalid_cutoff", ErrInvalidCutoff)
	}

	now := p.now().UTC()
	result := BatchResult{
		Cutoff:        now.AddDate(0, 0, -retentionCutoffDays),
		ImageFailures: map[string]error{},
	}
	if result.Cutoff.After(now) {
		return BatchResult{}, apperr.Invalid("archive.invalid_cutoff", ErrInvalidCutoff)
	}

	log := p.log.With(slog.String("op", op), slog.Time("cutoff", result.Cutoff))

	events, err := p.events.FindAllByStartOrEndBefore(ctx, result.Cutoff)
	if err != nil {
		return BatchResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(events) == 0 {
		log.Info("no past events to archive")
		return result, nil
	}

	ids := make([]string, 0, len(events))
	result.Archived = make([]models.ArchivedEvent, 0, len(events))
	for _, event := range events {
		count, err := p.participants.CountByEvent(ctx, event.ID)
		if err != nil {
			return BatchResult{}, fmt.Errorf("%s: count participants of %s: %w", op, event.ID, err)
		}

		ids = append(ids, event.ID)
		result.Archived = append(result.Archived, snapshot(event, count, now))
	}

	if err = p.archives.SaveAll(ctx, result.Archived); err != nil {
		return BatchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.relocateInBatch {
		for _, event := range events {
			if event.BannerImage == "" {
				continue
			}
			if _, err := p.images.Move(event.BannerImage); err != nil {
				log.Error("failed to move banner image", slog.String("event_id", event.ID), sl.Err(err))
				result.ImageFailures[event.ID] = imageMoveError(err)
			}
		}
	}

	if err = p.participants.DeleteAllByEventIn(ctx, ids); err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}
	if err = p.events.DeleteAllByIDs(ctx, ids); err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("past events archived",
		slog.Int("archived", len(result.Archived)),
		slog.Int("image_failures", len(result.ImageFailures)),
	)

	return result, nil
}

func snapshot(event models.Event, participants int, now time.Time) models.ArchivedEvent {
	return models.ArchivedEvent{
		ID:                   uuid.NewString(),
		OriginalEvent:        event.Clone(),
		DateArchived:         now.UTC(),
		NumberOfParticipants: participants,
		OriginalOwner:        event.OwnerID,
		ArchivedBannerImage:  event.BannerImage,
	}
}

func imageMoveError(err error) error {
	return apperr.StorageFailure("archive.image_move_failed", fmt.Errorf("%w: %w", ErrImageMoveFailed, err))
}
