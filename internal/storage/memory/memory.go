// Package memory is an in-process implementation of the storage contracts,
// used for local runs and tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventSignup/internal/models"
	"eventSignup/internal/storage"
)

type Storage struct {
	mu           sync.RWMutex
	events       map[string]models.Event
	participants map[string]models.Participant
	archives     map[string]models.ArchivedEvent
}

func New() *Storage {
	return &Storage{
		events:       make(map[string]models.Event),
		participants: make(map[string]models.Participant),
		archives:     make(map[string]models.ArchivedEvent),
	}
}

func (s *Storage) Events() *EventStore {
	return &EventStore{s: s}
}

func (s *Storage) Participants() *ParticipantStore {
	return &ParticipantStore{s: s}
}

func (s *Storage) Archives() *ArchiveStore {
	return &ArchiveStore{s: s}
}

var (
	_ storage.EventStore       = (*EventStore)(nil)
	_ storage.ParticipantStore = (*ParticipantStore)(nil)
	_ storage.ArchiveStore     = (*ArchiveStore)(nil)
)

type EventStore struct {
	s *Storage
}

func (st *EventStore) FindByID(_ context.Context, id string) (models.Event, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	e, ok := st.s.events[id]
	if !ok {
		return models.Event{}, storage.ErrEventNotFound
	}

	return e.Clone(), nil
}

func (st *EventStore) FindAllByOwner(_ context.Context, ownerID string) ([]models.Event, error) {
	return st.filter(func(e models.Event) bool { return e.OwnerID == ownerID }), nil
}

func (st *EventStore) FindAll(_ context.Context) ([]models.Event, error) {
	return st.filter(func(models.Event) bool { return true }), nil
}

func (st *EventStore) Save(_ context.Context, event models.Event) (models.Event, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	st.s.events[event.ID] = event.Clone()

	return event, nil
}

func (st *EventStore) DeleteByID(_ context.Context, id string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	delete(st.s.events, id)

	return nil
}

func (st *EventStore) ExistsByID(_ context.Context, id string) (bool, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	_, ok := st.s.events[id]

	return ok, nil
}

func (st *EventStore) FindAllByStartOrEndBefore(_ context.Context, cutoff time.Time) ([]models.Event, error) {
	return st.filter(func(e models.Event) bool {
		return e.StartDate.Before(cutoff) || (e.EndDate != nil && e.EndDate.Before(cutoff))
	}), nil
}

func (st *EventStore) DeleteAllByIDs(_ context.Context, ids []string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for _, id := range ids {
		delete(st.s.events, id)
	}

	return nil
}

func (st *EventStore) filter(keep func(models.Event) bool) []models.Event {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	out := make([]models.Event, 0, len(st.s.events))
	for _, e := range st.s.events {
		if keep(e) {
			out = append(out, e.Clone())
		}
	}

	slices.SortFunc(out, func(a, b models.Event) int {
		return cmp.Or(a.StartDate.Compare(b.StartDate), cmp.Compare(a.ID, b.ID))
	})

	return out
}

type ParticipantStore struct {
	s *Storage
}

func (st *ParticipantStore) CountByEvent(_ context.Context, eventID string) (int, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	return st.countLocked(eventID), nil
}

func (st *ParticipantStore) countLocked(eventID string) int {
	n := 0
	for _, p := range st.s.participants {
		if p.EventID == eventID {
			n++
		}
	}
	return n
}

func (st *ParticipantStore) FindAllByEvent(_ context.Context, eventID string) ([]models.Participant, error) {
	return st.filter(func(p models.Participant) bool { return p.EventID == eventID }), nil
}

func (st *ParticipantStore) FindAll(_ context.Context) ([]models.Participant, error) {
	return st.filter(func(models.Participant) bool { return true }), nil
}

func (st *ParticipantStore) FindByID(_ context.Context, id string) (models.Participant, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	p, ok := st.s.participants[id]
	if !ok {
		return models.Participant{}, storage.ErrParticipantNotFound
	}

	return p.Clone(), nil
}

func (st *ParticipantStore) Save(_ context.Context, participant models.Participant) (models.Participant, error) {
	if participant.ID == "" {
		participant.ID = uuid.NewString()
	}

	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	event, ok := st.s.events[participant.EventID]
	if !ok {
		return models.Participant{}, storage.ErrEventNotFound
	}

	if _, taken := st.s.participants[participant.ID]; taken {
		return models.Participant{}, storage.ErrParticipantExists
	}

	if event.MaxParticipants != nil && st.countLocked(event.ID) >= *event.MaxParticipants {
		return models.Participant{}, storage.ErrEventFull
	}

	st.s.participants[participant.ID] = participant.Clone()

	return participant, nil
}

func (st *ParticipantStore) DeleteByEventAndID(_ context.Context, eventID, id string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	p, ok := st.s.participants[id]
	if !ok || p.EventID != eventID {
		return storage.ErrParticipantNotFound
	}

	delete(st.s.participants, id)

	return nil
}

func (st *ParticipantStore) DeleteAllByEvent(ctx context.Context, eventID string) error {
	return st.DeleteAllByEventIn(ctx, []string{eventID})
}

func (st *ParticipantStore) DeleteAllByEventIn(_ context.Context, eventIDs []string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for id, p := range st.s.participants {
		if slices.Contains(eventIDs, p.EventID) {
			delete(st.s.participants, id)
		}
	}

	return nil
}

func (st *ParticipantStore) filter(keep func(models.Participant) bool) []models.Participant {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	out := make([]models.Participant, 0)
	for _, p := range st.s.participants {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}

	slices.SortFunc(out, func(a, b models.Participant) int {
		return cmp.Or(a.SignupTime.Compare(b.SignupTime), cmp.Compare(a.ID, b.ID))
	})

	return out
}

type ArchiveStore struct {
	s *Storage
}

func (st *ArchiveStore) Save(ctx context.Context, archived models.ArchivedEvent) error {
	return st.SaveAll(ctx, []models.ArchivedEvent{archived})
}

func (st *ArchiveStore) SaveAll(_ context.Context, archived []models.ArchivedEvent) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for _, a := range archived {
		st.s.archives[a.ID] = a.Clone()
	}

	return nil
}

func (st *ArchiveStore) FindAll(_ context.Context) ([]models.ArchivedEvent, error) {
	return st.filter(func(models.ArchivedEvent) bool { return true }), nil
}

func (st *ArchiveStore) FindAllByOriginalOwner(_ context.Context, ownerID string) ([]models.ArchivedEvent, error) {
	return st.filter(func(a models.ArchivedEvent) bool { return a.OriginalOwner == ownerID }), nil
}

func (st *ArchiveStore) DeleteAllArchivedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	var n int64
	for id, a := range st.s.archives {
		if a.DateArchived.Before(cutoff) {
			delete(st.s.archives, id)
			n++
		}
	}

	return n, nil
}

func (st *ArchiveStore) DeleteByID(_ context.Context, id string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	if _, ok := st.s.archives[id]; !ok {
		return storage.ErrArchiveNotFound
	}

	delete(st.s.archives, id)

	return nil
}

func (st *ArchiveStore) filter(keep func(models.ArchivedEvent) bool) []models.ArchivedEvent {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	out := make([]models.ArchivedEvent, 0, len(st.s.archives))
	for _, a := range st.s.archives {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}

	slices.SortFunc(out, func(a, b models.ArchivedEvent) int {
		return cmp.Or(a.DateArchived.Compare(b.DateArchived), cmp.Compare(a.ID, b.ID))
	})

	return out
}
