package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/models"
	"eventSignup/internal/notify"
)

type countingSink struct {
	mu        sync.Mutex
	delivered []notify.Notification
}

func (s *countingSink) Deliver(_ context.Context, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delivered = append(s.delivered, n)
	return nil
}

func (s *countingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.delivered)
}

// drainingServer publishes while Shutdown runs, the way a request that is
// still in flight would.
type drainingServer struct {
	publish func()
}

func (s drainingServer) Shutdown(context.Context) error {
	s.publish()
	return nil
}

type waitFunc func()

func (f waitFunc) Wait() { f() }

func TestShutdownDeliversLateNotifications(t *testing.T) {
	t.Parallel()

	sink := &countingSink{}
	d := notify.NewDispatcher(slogdiscard.NewDiscardLogger(), sink, 8)

	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()

	var workers sync.WaitGroup
	workers.Add(1)
	go func() {
		defer workers.Done()
		d.Run(dispatchCtx)
	}()

	event := models.Event{ID: "e1", Name: "Party"}
	srv := drainingServer{publish: func() {
		d.Publish(notify.SignupSuccessful{Event: event, Participant: models.Participant{ID: "p1"}})
	}}
	jobs := waitFunc(func() {
		assert.NoError(t, dispatchCtx.Err())
		d.Publish(notify.EventSaved{Event: event})
	})

	shutdown(context.Background(), slogdiscard.NewDiscardLogger(), srv, jobs, stopDispatch, &workers)

	assert.Equal(t, 2, sink.count())
}
