package notify

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"eventSignup/internal/lib/i18n"
	"eventSignup/internal/models"
)

type Translator interface {
	T(locale, key string, data map[string]any) string
}

// LogSink renders the localized message and writes it to the log in place of sending mail.
type LogSink struct {
	log        *slog.Logger
	translator Translator
}

func NewLogSink(log *slog.Logger, translator Translator) *LogSink {
	return &LogSink{
		log:        log.With(slog.String("component", "notify/logsink")),
		translator: translator,
	}
}

func (s *LogSink) Deliver(_ context.Context, n Notification) error {
	recipient, loc, key, data, err := render(n)
	if err != nil {
		return err
	}

	text := s.translator.T(loc.Language, key, i18n.PresentTimes(data, loc.TimeZone))

	s.log.Info("notification delivered",
		slog.String("kind", string(n.Kind())),
		slog.String("recipient", recipient),
		slog.String("message", text),
	)

	return nil
}

func render(n Notification) (recipient string, loc models.Locale, key string, data map[string]any, err error) {
	switch v := n.(type) {
	case EventSaved:
		return v.Event.OwnerID, v.Locale, "notify.event_saved", map[string]any{
			"EventName": v.Event.Name,
			"StartDate": v.Event.StartDate,
		}, nil
	case SignupSuccessful:
		return v.Participant.Email, v.Locale, "notify.signup_successful", map[string]any{
			"ParticipantName": v.Participant.Name,
			"EventName":       v.Event.Name,
			"StartDate":       v.Event.StartDate,
		}, nil
	case SignupCancelled:
		return v.Participant.Email, v.Locale, "notify.signup_cancelled", map[string]any{
			"ParticipantName": v.Participant.Name,
			"EventName":       v.Event.Name,
		}, nil
	case EventArchived:
		return v.Archive.OriginalOwner, v.Locale, "notify.event_archived", map[string]any{
			"EventName":    v.Archive.OriginalEvent.Name,
			"Participants": formatCount(v.Locale.Language, v.Archive.NumberOfParticipants),
		}, nil
	default:
		return "", models.Locale{}, "", nil, fmt.Errorf("unsupported notification %T", n)
	}
}

func formatCount(locale string, n int) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return message.NewPrinter(tag).Sprintf("%d", n)
}
