package signup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/models"
	"eventSignup/internal/notify"
	"eventSignup/internal/storage/memory"
)

type recordingPublisher struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (p *recordingPublisher) Publish(n notify.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.got = append(p.got, n)
}

func (p *recordingPublisher) notifications() []notify.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]notify.Notification(nil), p.got...)
}

type fixture struct {
	store     *memory.Storage
	publisher *recordingPublisher
	registrar *Registrar
	service   *Service
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()
	store := memory.New()
	publisher := &recordingPublisher{}
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	registrar := NewRegistrar(log, store.Events(), store.Participants(), publisher)
	registrar.now = clock

	service := NewService(log, store.Events(), store.Participants(), registrar)
	service.now = clock

	return &fixture{
		store:     store,
		publisher: publisher,
		registrar: registrar,
		service:   service,
		now:       now,
	}
}

func (f *fixture) saveEvent(t *testing.T, event models.Event) models.Event {
	t.Helper()

	if event.StartDate.IsZero() {
		event.StartDate = f.now.Add(72 * time.Hour)
	}

	saved, err := f.store.Events().Save(context.Background(), event)
	require.NoError(t, err)

	return saved
}
