package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"eventSignup/internal/models"
	"eventSignup/internal/storage"
)

const eventColumns = `id, name, place, description, start_date, end_date,
	signup_opens_at, signup_closes_at, min_participants, max_participants,
	owner_id, form_created_at, form_created_by, banner_image, quotas, metadata`

type EventStore struct {
	db *sql.DB
}

func (s *EventStore) FindByID(ctx context.Context, id string) (models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, storage.ErrEventNotFound
		}
		return models.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *EventStore) FindAllByOwner(ctx context.Context, ownerID string) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE owner_id = $1 ORDER BY start_date ASC`

	return s.query(ctx, query, ownerID)
}

func (s *EventStore) FindAll(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date ASC`

	return s.query(ctx, query)
}

func (s *EventStore) FindAllByStartOrEndBefore(ctx context.Context, cutoff time.Time) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE start_date < $1 OR end_date < $1
		ORDER BY start_date ASC`

	return s.query(ctx, query, cutoff.UTC())
}

// Save inserts the event or replaces every field of an existing one with the same id.
func (s *EventStore) Save(ctx context.Context, event models.Event) (models.Event, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	quotas, err := marshalJSON(event.Quotas)
	if err != nil {
		return models.Event{}, err
	}
	metadata, err := marshalJSON(event.Metadata)
	if err != nil {
		return models.Event{}, err
	}

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			place = EXCLUDED.place,
			description = EXCLUDED.description,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			signup_opens_at = EXCLUDED.signup_opens_at,
			signup_closes_at = EXCLUDED.signup_closes_at,
			min_participants = EXCLUDED.min_participants,
			max_participants = EXCLUDED.max_participants,
			owner_id = EXCLUDED.owner_id,
			form_created_at = EXCLUDED.form_created_at,
			form_created_by = EXCLUDED.form_created_by,
			banner_image = EXCLUDED.banner_image,
			quotas = EXCLUDED.quotas,
			metadata = EXCLUDED.metadata`

	_, err = s.db.ExecContext(ctx, query,
		event.ID,
		event.Name,
		event.Place,
		event.Description,
		event.StartDate.UTC(),
		nullTime(event.EndDate),
		nullTime(event.SignupWindow.OpensAt),
		nullTime(event.SignupWindow.ClosesAt),
		nullInt(event.MinParticipants),
		nullInt(event.MaxParticipants),
		event.OwnerID,
		event.Form.CreatedAt.UTC(),
		event.Form.CreatedBy,
		sql.NullString{String: event.BannerImage, Valid: event.BannerImage != ""},
		quotas,
		metadata,
	)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to save event: %w", err)
	}

	return event, nil
}

func (s *EventStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (s *EventStore) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event existence: %w", err)
	}

	return exists, nil
}

func (s *EventStore) DeleteAllByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ANY($1::uuid[])`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}

	return nil
}

func (s *EventStore) query(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		event                     models.Event
		endDate, opensAt, closeAt sql.NullTime
		minP, maxP                sql.NullInt64
		banner                    sql.NullString
		quotas, metadata          []byte
	)

	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Place,
		&event.Description,
		&event.StartDate,
		&endDate,
		&opensAt,
		&closeAt,
		&minP,
		&maxP,
		&event.OwnerID,
		&event.Form.CreatedAt,
		&event.Form.CreatedBy,
		&banner,
		&quotas,
		&metadata,
	)
	if err != nil {
		return models.Event{}, err
	}

	event.StartDate = event.StartDate.UTC()
	event.Form.CreatedAt = event.Form.CreatedAt.UTC()
	event.EndDate = timePtr(endDate)
	event.SignupWindow = models.SignupWindow{OpensAt: timePtr(opensAt), ClosesAt: timePtr(closeAt)}
	event.MinParticipants = intPtr(minP)
	event.MaxParticipants = intPtr(maxP)
	event.BannerImage = banner.String

	if err = unmarshalJSON(quotas, &event.Quotas); err != nil {
		return models.Event{}, err
	}
	if err = unmarshalJSON(metadata, &event.Metadata); err != nil {
		return models.Event{}, err
	}

	return event, nil
}
