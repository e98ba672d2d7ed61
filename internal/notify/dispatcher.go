package notify

import (
	"context"
	"log/slog"

	"eventSignup/internal/lib/logger/sl"
)

// Sink delivers a notification, e.g. by email.
type Sink interface {
	Deliver(ctx context.Context, n Notification) error
}

// Dispatcher queues notifications and hands them to a Sink from a single goroutine.
type Dispatcher struct {
	log   *slog.Logger
	sink  Sink
	queue chan Notification
}

func NewDispatcher(log *slog.Logger, sink Sink, bufferSize int) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 1
	}

	return &Dispatcher{
		log:   log.With(slog.String("component", "notify/dispatcher")),
		sink:  sink,
		queue: make(chan Notification, bufferSize),
	}
}

// Publish enqueues n, dropping it with a warning when the queue is full.
func (d *Dispatcher) Publish(n Notification) {
	select {
	case d.queue <- n:
	default:
		d.log.Warn("notification queue full, dropping notification", slog.String("kind", string(n.Kind())))
	}
}

// Run delivers queued notifications until ctx is done, then flushes what is left.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case n := <-d.queue:
			d.deliver(ctx, n)
		case <-ctx.Done():
			d.flush()
			return
		}
	}
}

func (d *Dispatcher) flush() {
	for {
		select {
		case n := <-d.queue:
			d.deliver(context.Background(), n)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n Notification) {
	if err := d.sink.Deliver(ctx, n); err != nil {
		d.log.Error("failed to deliver notification", slog.String("kind", string(n.Kind())), sl.Err(err))
	}
}
