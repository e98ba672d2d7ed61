package signup

import (
	"time"

	"eventSignup/internal/models"
)

type Outcome int

const (
	Open Outcome = iota
	NotStarted
	Ended
	EventAlreadyHeld
	Full
)

func (o Outcome) String() string {
	switch o {
	case Open:
		return "open"
	case NotStarted:
		return "not_started"
	case Ended:
		return "ended"
	case EventAlreadyHeld:
		return "event_already_held"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Decision is the result of Evaluate. ReopensAt is set only for NotStarted.
type Decision struct {
	Outcome   Outcome
	EventName string
	ReopensAt time.Time
}

func (d Decision) Allowed() bool {
	return d.Outcome == Open
}

func (d Decision) MessageKey() string {
	switch d.Outcome {
	case NotStarted:
		return "signup.not_started"
	case Ended:
		return "signup.ended"
	case EventAlreadyHeld:
		return "signup.already_held"
	case Full:
		return "signup.full"
	default:
		return "signup.open"
	}
}

func (d Decision) TemplateData() map[string]any {
	data := map[string]any{"EventName": d.EventName}
	if d.Outcome == NotStarted {
		data["OpensAt"] = d.ReopensAt
	}
	return data
}

// Evaluate decides whether a new participant may sign up for event, given the
// number already registered. Rules apply in order and the first match wins:
// window not yet open, window closed, event already started, event full.
// Times are compared in UTC.
func Evaluate(event models.Event, participantCount int, now time.Time) Decision {
	now = now.UTC()
	w := event.SignupWindow

	switch {
	case w.OpensAt != nil && w.OpensAt.UTC().After(now):
		return Decision{Outcome: NotStarted, EventName: event.Name, ReopensAt: w.OpensAt.UTC()}
	case w.ClosesAt != nil && w.ClosesAt.UTC().Before(now):
		return Decision{Outcome: Ended, EventName: event.Name}
	case event.StartDate.UTC().Before(now):
		return Decision{Outcome: EventAlreadyHeld, EventName: event.Name}
	case event.MaxParticipants != nil && participantCount >= *event.MaxParticipants:
		return Decision{Outcome: Full, EventName: event.Name}
	default:
		return Decision{Outcome: Open, EventName: event.Name}
	}
}
