package archivePastEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"eventSignup/internal/archive"
	"eventSignup/internal/lib/api/request"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"
)

type Response struct {
	response.Response
	Cutoff        time.Time         `json:"cutoff"`
	ArchiveIDs    []string          `json:"archive_ids"`
	ImageFailures map[string]string `json:"image_failures,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PastEventsArchiver
type PastEventsArchiver interface {
	ArchivePastEvents(ctx context.Context, retentionCutoffDays int) (archive.BatchResult, error)
}

// New runs a batch archival sweep on demand. The days query parameter overrides
// defaultDays.
func New(log *slog.Logger, tr response.Translator, archiver PastEventsArchiver, defaultDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.archive.archivePastEvents.New"

		log := log.With(slog.String("op", op))

		days := defaultDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				log.Error("invalid days parameter", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid days parameter"))
				return
			}
			days = parsed
		}

		result, err := archiver.ArchivePastEvents(r.Context(), days)
		if err != nil {
			log.Error("failed to archive past events", slog.Int("days", days), sl.Err(err))
			response.Fail(w, r, tr, request.Locale(r), err)
			return
		}

		log.Info("past events archived",
			slog.Int("days", days),
			slog.Int("archived", len(result.Archived)),
			slog.Int("image_failures", len(result.ImageFailures)),
		)

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result archive.BatchResult) {
	resp := Response{
		Response:   response.OK(),
		Cutoff:     result.Cutoff,
		ArchiveIDs: make([]string, 0, len(result.Archived)),
	}

	for _, a := range result.Archived {
		resp.ArchiveIDs = append(resp.ArchiveIDs, a.ID)
	}

	if len(result.ImageFailures) > 0 {
		resp.ImageFailures = make(map[string]string, len(result.ImageFailures))
		for id, err := range result.ImageFailures {
			resp.ImageFailures[id] = err.Error()
		}
	}

	render.JSON(w, r, resp)
}
