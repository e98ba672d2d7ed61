package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"eventSignup/internal/archive"
	"eventSignup/internal/config"
	"eventSignup/internal/events"
	"eventSignup/internal/http-server/handlers/archive/archiveEvent"
	"eventSignup/internal/http-server/handlers/archive/archivePastEvents"
	"eventSignup/internal/http-server/handlers/archive/deleteArchive"
	"eventSignup/internal/http-server/handlers/archive/getArchives"
	"eventSignup/internal/http-server/handlers/archive/retentionSweep"
	"eventSignup/internal/http-server/handlers/event/getAllEvents"
	"eventSignup/internal/http-server/handlers/event/getEventInfo"
	"eventSignup/internal/http-server/handlers/event/removeEvent"
	"eventSignup/internal/http-server/handlers/event/saveEvent"
	"eventSignup/internal/http-server/handlers/event/signupStatus"
	"eventSignup/internal/http-server/handlers/participant/addParticipant"
	"eventSignup/internal/http-server/handlers/participant/removeParticipant"
	"eventSignup/internal/http-server/middleware/mwlogger"
	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/lib/logger/handlers/slogpretty"
	"eventSignup/internal/lib/logger/sl"
	"eventSignup/internal/notify"
	"eventSignup/internal/scheduler"
	"eventSignup/internal/signup"
	"eventSignup/internal/storage"
	"eventSignup/internal/storage/images"
	"eventSignup/internal/storage/memory"
	"eventSignup/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type stores struct {
	events       storage.EventStore
	participants storage.ParticipantStore
	archives     storage.ArchiveStore
	close        func() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting event signup", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))
	log.Debug("debug messages are enabled")

	st, err := setupStorage(log, cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	translator := i18n.NewTranslator(log, cfg.DefaultLocale)
	dispatcher := notify.NewDispatcher(log, notify.NewLogSink(log, translator), cfg.Notify.BufferSize)
	relocator := images.NewRelocator(cfg.Images.LiveDir, cfg.Images.ArchiveDir)

	registrar := signup.NewRegistrar(log, st.events, st.participants, dispatcher)
	signups := signup.NewService(log, st.events, st.participants, registrar)
	eventService := events.NewService(log, st.events, st.participants, dispatcher)
	pipeline := archive.NewPipeline(log, st.events, st.participants, st.archives, relocator, dispatcher,
		cfg.Archive.RelocateImagesInBatch)
	sweeper := archive.NewSweeper(log, st.archives)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer cancel()

	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()

	var workers sync.WaitGroup
	workers.Add(1)
	go func() {
		defer workers.Done()
		dispatcher.Run(dispatchCtx)
	}()

	jobs := scheduler.New(log,
		scheduler.Job{
			Name:       "archive-past-events",
			Interval:   cfg.Archive.Interval,
			RunOnStart: cfg.Archive.RunOnStart,
			Run: func(ctx context.Context) error {
				_, err := pipeline.ArchivePastEvents(ctx, cfg.Archive.RetentionCutoffDays)
				return err
			},
		},
		scheduler.Job{
			Name:       "remove-old-archives",
			Interval:   cfg.Retention.Interval,
			RunOnStart: cfg.Retention.RunOnStart,
			Run: func(ctx context.Context) error {
				_, err := sweeper.RemoveArchivedEventsOlderThanOneYear(ctx)
				return err
			},
		},
	)
	jobs.Start(ctx)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Accept-Language", "X-Time-Zone"},
	}).Handler)

	router.Route("/events", func(r chi.Router) {
		r.Post("/", saveEvent.New(log, translator, eventService))
		r.Get("/", getAllEvents.New(log, translator, eventService))
		r.Get("/{id}", getEventInfo.New(log, translator, eventService))
		r.Delete("/{id}", removeEvent.New(log, translator, eventService))
		r.Get("/{id}/signup", signupStatus.New(log, translator, signups))
		r.Post("/{id}/participants", addParticipant.New(log, translator, signups))
		r.Delete("/{id}/participants/{participantID}", removeParticipant.New(log, translator, signups))
		r.Post("/{id}/archive", archiveEvent.New(log, translator, pipeline))
	})

	router.Route("/archives", func(r chi.Router) {
		r.Get("/", getArchives.New(log, translator, sweeper))
		r.Delete("/{id}", deleteArchive.New(log, translator, sweeper))
	})

	router.Route("/admin", func(r chi.Router) {
		r.Post("/archive-sweep", archivePastEvents.New(log, translator, pipeline, cfg.Archive.RetentionCutoffDays))
		r.Post("/retention-sweep", retentionSweep.New(log, translator, sweeper))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			cancel()
		}
	}()

	<-ctx.Done()

	log.Info("application stopping")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	shutdown(shutdownCtx, log, srv, jobs, stopDispatch, &workers)

	log.Info("application stopped")

	if err = st.close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(log *slog.Logger, cfg *config.Config) (*stores, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("using in-memory storage, data is lost on restart")

		s := memory.New()
		return &stores{
			events:       s.Events(),
			participants: s.Participants(),
			archives:     s.Archives(),
			close:        func() error { return nil },
		}, nil
	default:
		version, err := postgres.RunMigrations(&cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("migrations applied", slog.Uint64("version", uint64(version)))

		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return &stores{
			events:       s.Events(),
			participants: s.Participants(),
			archives:     s.Archives(),
			close:        s.Close,
		}, nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
