package main

import (
	"context"
	"log/slog"

	"eventSignup/internal/lib/logger/sl"
)

type server interface {
	Shutdown(ctx context.Context) error
}

type waiter interface {
	Wait()
}

// shutdown drains the HTTP server and the scheduled jobs before stopping the
// notification dispatcher, so notifications published by in-flight requests
// are still delivered.
func shutdown(
	ctx context.Context,
	log *slog.Logger,
	srv server,
	jobs waiter,
	stopDispatch context.CancelFunc,
	workers waiter,
) {
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	jobs.Wait()

	stopDispatch()
	workers.Wait()
}
