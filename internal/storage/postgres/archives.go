package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"eventSignup/internal/models"
	"eventSignup/internal/storage"
)

const archiveColumns = `id, original_event, date_archived, number_of_participants, original_owner, archived_banner_image`

// ArchiveStore has no update path: archive rows are insert-only.
type ArchiveStore struct {
	db *sql.DB
}

func (s *ArchiveStore) Save(ctx context.Context, archived models.ArchivedEvent) error {
	return s.SaveAll(ctx, []models.ArchivedEvent{archived})
}

func (s *ArchiveStore) SaveAll(ctx context.Context, archived []models.ArchivedEvent) error {
	if len(archived) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO archived_events (`+archiveColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("failed to prepare archive insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range archived {
		original, err := marshalJSON(a.OriginalEvent)
		if err != nil {
			return err
		}

		_, err = stmt.ExecContext(ctx,
			a.ID,
			original,
			a.DateArchived.UTC(),
			a.NumberOfParticipants,
			a.OriginalOwner,
			sql.NullString{String: a.ArchivedBannerImage, Valid: a.ArchivedBannerImage != ""},
		)
		if err != nil {
			return fmt.Errorf("failed to save archived event %s: %w", a.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit archived events: %w", err)
	}

	return nil
}

func (s *ArchiveStore) FindAll(ctx context.Context) ([]models.ArchivedEvent, error) {
	query := `SELECT ` + archiveColumns + ` FROM archived_events ORDER BY date_archived ASC`

	return s.query(ctx, query)
}

func (s *ArchiveStore) FindAllByOriginalOwner(ctx context.Context, ownerID string) ([]models.ArchivedEvent, error) {
	query := `SELECT ` + archiveColumns + `
		FROM archived_events
		WHERE original_owner = $1
		ORDER BY date_archived ASC`

	return s.query(ctx, query, ownerID)
}

func (s *ArchiveStore) DeleteAllArchivedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM archived_events WHERE date_archived < $1`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete archived events: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted archived events: %w", err)
	}

	return rowsAffected, nil
}

func (s *ArchiveStore) DeleteByID(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM archived_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete archived event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete archived event: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrArchiveNotFound
	}

	return nil
}

func (s *ArchiveStore) query(ctx context.Context, query string, args ...any) ([]models.ArchivedEvent, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get archived events: %w", err)
	}
	defer rows.Close()

	var archived []models.ArchivedEvent
	for rows.Next() {
		var (
			a        models.ArchivedEvent
			original []byte
			banner   sql.NullString
		)

		err = rows.Scan(&a.ID, &original, &a.DateArchived, &a.NumberOfParticipants, &a.OriginalOwner, &banner)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived event: %w", err)
		}

		if err = unmarshalJSON(original, &a.OriginalEvent); err != nil {
			return nil, err
		}
		a.DateArchived = a.DateArchived.UTC()
		a.ArchivedBannerImage = banner.String

		archived = append(archived, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating archived events: %w", err)
	}

	return archived, nil
}
