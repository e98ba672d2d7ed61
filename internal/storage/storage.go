// Package storage declares the persistence contracts the core depends on.
package storage

import (
	"context"
	"errors"
	"time"

	"eventSignup/internal/models"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrArchiveNotFound     = errors.New("archived event not found")
	ErrEventFull           = errors.New("event is full")
	ErrParticipantExists   = errors.New("participant already exists")
)

// EventStore holds live events. Deletes are idempotent.
type EventStore interface {
	FindByID(ctx context.Context, id string) (models.Event, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	Save(ctx context.Context, event models.Event) (models.Event, error)
	DeleteByID(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindAllByStartOrEndBefore(ctx context.Context, cutoff time.Time) ([]models.Event, error)
	DeleteAllByIDs(ctx context.Context, ids []string) error
}

// ParticipantStore holds participants of live events.
//
// Save inserts a new participant and enforces the event's MaxParticipants atomically,
// failing with ErrEventFull when the ceiling is reached, ErrEventNotFound when the
// event is gone and ErrParticipantExists when the ID is already taken.
type ParticipantStore interface {
	CountByEvent(ctx context.Context, eventID string) (int, error)
	FindAllByEvent(ctx context.Context, eventID string) ([]models.Participant, error)
	FindAll(ctx context.Context) ([]models.Participant, error)
	FindByID(ctx context.Context, id string) (models.Participant, error)
	Save(ctx context.Context, participant models.Participant) (models.Participant, error)
	DeleteByEventAndID(ctx context.Context, eventID, id string) error
	DeleteAllByEvent(ctx context.Context, eventID string) error
	DeleteAllByEventIn(ctx context.Context, eventIDs []string) error
}

// ArchiveStore holds archived events. Records are written once and never updated.
type ArchiveStore interface {
	Save(ctx context.Context, archived models.ArchivedEvent) error
	SaveAll(ctx context.Context, archived []models.ArchivedEvent) error
	FindAll(ctx context.Context) ([]models.ArchivedEvent, error)
	FindAllByOriginalOwner(ctx context.Context, ownerID string) ([]models.ArchivedEvent, error)
	DeleteAllArchivedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteByID(ctx context.Context, id string) error
}
