package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventSignup/internal/apperr"
	"eventSignup/internal/models"
	"eventSignup/internal/storage"
)

const oneYear = 365 * 24 * time.Hour

// Sweeper permanently deletes archive records.
type Sweeper struct {
	log      *slog.Logger
	archives storage.ArchiveStore
	now      func() time.Time
}

func NewSweeper(log *slog.Logger, archives storage.ArchiveStore) *Sweeper {
	return &Sweeper{
		log:      log,
		archives: archives,
		now:      time.Now,
	}
}

// RemoveArchivedEventsBefore deletes records archived strictly before cutoff.
func (s *Sweeper) RemoveArchivedEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const op = "archive.Sweeper.RemoveArchivedEventsBefore"

	removed, err := s.archives.DeleteAllArchivedBefore(ctx, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("archived events removed",
		slog.String("op", op),
		slog.Time("cutoff", cutoff.UTC()),
		slog.Int64("removed", removed),
	)

	return removed, nil
}

func (s *Sweeper) RemoveArchivedEventsOlderThanOneYear(ctx context.Context) (int64, error) {
	return s.RemoveArchivedEventsBefore(ctx, s.now().Add(-oneYear))
}

// DeleteArchive removes a single archive record on explicit request.
func (s *Sweeper) DeleteArchive(ctx context.Context, id string) error {
	const op = "archive.Sweeper.DeleteArchive"

	if err := s.archives.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrArchiveNotFound) {
			return apperr.NotFound("archive.not_found", err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("archived event deleted", slog.String("op", op), slog.String("archive_id", id))

	return nil
}

// ListArchives returns every archive record, or only ownerID's when it is set.
func (s *Sweeper) ListArchives(ctx context.Context, ownerID string) ([]models.ArchivedEvent, error) {
	const op = "archive.Sweeper.ListArchives"

	var (
		archived []models.ArchivedEvent
		err      error
	)
	if ownerID != "" {
		archived, err = s.archives.FindAllByOriginalOwner(ctx, ownerID)
	} else {
		archived, err = s.archives.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return archived, nil
}
