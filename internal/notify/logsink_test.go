package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventSignup/internal/lib/logger/handlers/slogdiscard"
	"eventSignup/internal/models"
)

type fakeTranslator struct {
	locale string
	key    string
	data   map[string]any
}

func (f *fakeTranslator) T(locale, key string, data map[string]any) string {
	f.locale, f.key, f.data = locale, key, data
	return key
}

func TestLogSinkDeliver(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	event := models.Event{ID: "e1", Name: "Party", OwnerID: "owner", StartDate: start}
	participant := models.Participant{ID: "p1", Name: "Kari", Email: "kari@example.com"}
	loc := models.Locale{Language: "nb", TimeZone: "Europe/Oslo"}

	testCases := []struct {
		name  string
		n     Notification
		key   string
		check func(t *testing.T, data map[string]any)
	}{
		{
			name: "Signup successful formats start date in recipient zone",
			n:    SignupSuccessful{Event: event, Participant: participant, Locale: loc},
			key:  "notify.signup_successful",
			check: func(t *testing.T, data map[string]any) {
				assert.Equal(t, "Kari", data["ParticipantName"])
				assert.Equal(t, "2026-06-01 20:00 CEST", data["StartDate"])
			},
		},
		{
			name: "Signup cancelled",
			n:    SignupCancelled{Event: event, Participant: participant, Locale: loc},
			key:  "notify.signup_cancelled",
			check: func(t *testing.T, data map[string]any) {
				assert.Equal(t, "Party", data["EventName"])
			},
		},
		{
			name: "Event archived formats count for locale",
			n: EventArchived{
				Archive: models.ArchivedEvent{OriginalEvent: event, NumberOfParticipants: 1200, OriginalOwner: "owner"},
				Locale:  models.Locale{Language: "en"},
			},
			key: "notify.event_archived",
			check: func(t *testing.T, data map[string]any) {
				assert.Equal(t, "1,200", data["Participants"])
			},
		},
		{
			name: "Event saved",
			n:    EventSaved{Event: event, Locale: models.Locale{Language: "en"}},
			key:  "notify.event_saved",
			check: func(t *testing.T, data map[string]any) {
				assert.Equal(t, "2026-06-01 18:00 UTC", data["StartDate"])
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr := &fakeTranslator{}
			sink := NewLogSink(slogdiscard.NewDiscardLogger(), tr)

			require.NoError(t, sink.Deliver(context.Background(), tc.n))

			assert.Equal(t, tc.key, tr.key)
			tc.check(t, tr.data)
		})
	}
}
