// Package notify carries domain notifications from the core to downstream
// consumers without blocking the operation that raised them.
package notify

import "eventSignup/internal/models"

type Kind string

const (
	KindEventSaved       Kind = "event_saved"
	KindSignupSuccessful Kind = "signup_successful"
	KindSignupCancelled  Kind = "signup_cancelled"
	KindEventArchived    Kind = "event_archived"
)

// Notification is one of the typed payloads below.
type Notification interface {
	Kind() Kind
}

// Publisher is fire-and-forget: Publish must not block and reports no error.
type Publisher interface {
	Publish(n Notification)
}

type EventSaved struct {
	Event  models.Event
	Locale models.Locale
}

type SignupSuccessful struct {
	Event       models.Event
	Participant models.Participant
	Locale      models.Locale
}

type SignupCancelled struct {
	Event       models.Event
	Participant models.Participant
	Locale      models.Locale
}

type EventArchived struct {
	Archive models.ArchivedEvent
	Locale  models.Locale
}

func (EventSaved) Kind() Kind       { return KindEventSaved }
func (SignupSuccessful) Kind() Kind { return KindSignupSuccessful }
func (SignupCancelled) Kind() Kind  { return KindSignupCancelled }
func (EventArchived) Kind() Kind    { return KindEventArchived }
