package models

import "time"

// ArchivedEvent is an immutable snapshot of an event taken when it left live storage.
type ArchivedEvent struct {
	ID                   string    `json:"id"`
	OriginalEvent        Event     `json:"original_event"`
	DateArchived         time.Time `json:"date_archived"`
	NumberOfParticipants int       `json:"number_of_participants"`
	OriginalOwner        string    `json:"original_owner"`
	ArchivedBannerImage  string    `json:"archived_banner_image,omitempty"`
}

func (a ArchivedEvent) Clone() ArchivedEvent {
	c := a
	c.OriginalEvent = a.OriginalEvent.Clone()
	return c
}
