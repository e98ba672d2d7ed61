package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"eventSignup/internal/models"
	"eventSignup/internal/storage"
)

const participantColumns = `id, event_id, name, email, gender, meal, drink, quota,
	is_member, has_paid, signup_time, metadata`

type ParticipantStore struct {
	db *sql.DB
}

func (s *ParticipantStore) CountByEvent(ctx context.Context, eventID string) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}

	return count, nil
}

func (s *ParticipantStore) FindAllByEvent(ctx context.Context, eventID string) ([]models.Participant, error) {
	query := `SELECT ` + participantColumns + `
		FROM participants
		WHERE event_id = $1
		ORDER BY signup_time ASC`

	return s.query(ctx, query, eventID)
}

func (s *ParticipantStore) FindAll(ctx context.Context) ([]models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants ORDER BY signup_time ASC`

	return s.query(ctx, query)
}

func (s *ParticipantStore) FindByID(ctx context.Context, id string) (models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`

	p, err := scanParticipant(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Participant{}, storage.ErrParticipantNotFound
		}
		return models.Participant{}, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

// Save locks the event row, re-checks the capacity ceiling and inserts in one
// transaction, so concurrent signups cannot push the count past max_participants.
func (s *ParticipantStore) Save(ctx context.Context, p models.Participant) (models.Participant, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	metadata, err := marshalJSON(p.Metadata)
	if err != nil {
		return models.Participant{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Participant{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxParticipants sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`, p.EventID,
	).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Participant{}, storage.ErrEventNotFound
		}
		return models.Participant{}, fmt.Errorf("failed to lock event: %w", err)
	}

	if maxParticipants.Valid {
		var count int64
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants WHERE event_id = $1`, p.EventID).Scan(&count)
		if err != nil {
			return models.Participant{}, fmt.Errorf("failed to count participants: %w", err)
		}

		if count >= maxParticipants.Int64 {
			return models.Participant{}, storage.ErrEventFull
		}
	}

	insertQuery := `
		INSERT INTO participants (` + participantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = tx.ExecContext(ctx, insertQuery,
		p.ID,
		p.EventID,
		p.Name,
		p.Email,
		p.Gender,
		p.Meal,
		p.Drink,
		p.Quota,
		p.IsMember,
		p.HasPaid,
		p.SignupTime.UTC(),
		metadata,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.Participant{}, storage.ErrParticipantExists
		}
		return models.Participant{}, fmt.Errorf("failed to create participant: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Participant{}, fmt.Errorf("failed to commit participant: %w", err)
	}

	return p, nil
}

func (s *ParticipantStore) DeleteByEventAndID(ctx context.Context, eventID, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM participants WHERE event_id = $1 AND id = $2`, eventID, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrParticipantNotFound
	}

	return nil
}

func (s *ParticipantStore) DeleteAllByEvent(ctx context.Context, eventID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM participants WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	return nil
}

func (s *ParticipantStore) DeleteAllByEventIn(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM participants WHERE event_id = ANY($1::uuid[])`, pq.Array(eventIDs))
	if err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	return nil
}

func (s *ParticipantStore) query(ctx context.Context, query string, args ...any) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participants: %w", err)
	}

	return participants, nil
}

func scanParticipant(row rowScanner) (models.Participant, error) {
	var (
		p        models.Participant
		metadata []byte
	)

	err := row.Scan(
		&p.ID,
		&p.EventID,
		&p.Name,
		&p.Email,
		&p.Gender,
		&p.Meal,
		&p.Drink,
		&p.Quota,
		&p.IsMember,
		&p.HasPaid,
		&p.SignupTime,
		&metadata,
	)
	if err != nil {
		return models.Participant{}, err
	}

	p.SignupTime = p.SignupTime.UTC()

	if err = unmarshalJSON(metadata, &p.Metadata); err != nil {
		return models.Participant{}, err
	}

	return p, nil
}
