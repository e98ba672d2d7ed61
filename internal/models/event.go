package models

import (
	"errors"
	"maps"
	"time"
)

var ErrSignupWindowOrder = errors.New("signup window opens after it closes")

type Event struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Place           string            `json:"place"`
	Description     string            `json:"description"`
	StartDate       time.Time         `json:"start_date"`
	EndDate         *time.Time        `json:"end_date,omitempty"`
	SignupWindow    SignupWindow      `json:"signup_window"`
	MinParticipants *int              `json:"min_participants,omitempty"`
	MaxParticipants *int              `json:"max_participants,omitempty"`
	OwnerID         string            `json:"owner_id"`
	Form            FormMeta          `json:"form"`
	BannerImage     string            `json:"banner_image,omitempty"`
	Quotas          map[string]int    `json:"quotas,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// SignupWindow bounds are independent; either may be unset.
type SignupWindow struct {
	OpensAt  *time.Time `json:"opens_at,omitempty"`
	ClosesAt *time.Time `json:"closes_at,omitempty"`
}

type FormMeta struct {
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

func (e Event) Validate() error {
	w := e.SignupWindow
	if w.OpensAt != nil && w.ClosesAt != nil && w.OpensAt.After(*w.ClosesAt) {
		return ErrSignupWindowOrder
	}

	return nil
}

// Clone returns a deep copy so snapshots never share pointers or maps with the live value.
func (e Event) Clone() Event {
	c := e
	c.EndDate = cloneTime(e.EndDate)
	c.SignupWindow = SignupWindow{
		OpensAt:  cloneTime(e.SignupWindow.OpensAt),
		ClosesAt: cloneTime(e.SignupWindow.ClosesAt),
	}
	c.MinParticipants = cloneInt(e.MinParticipants)
	c.MaxParticipants = cloneInt(e.MaxParticipants)
	c.Quotas = maps.Clone(e.Quotas)
	c.Metadata = maps.Clone(e.Metadata)

	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
