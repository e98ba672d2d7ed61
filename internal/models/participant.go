package models

import (
	"maps"
	"time"
)

type Participant struct {
	ID         string            `json:"id"`
	EventID    string            `json:"event_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Gender     string            `json:"gender,omitempty"`
	Meal       string            `json:"meal,omitempty"`
	Drink      string            `json:"drink,omitempty"`
	Quota      string            `json:"quota,omitempty"`
	IsMember   bool              `json:"is_member"`
	HasPaid    bool              `json:"has_paid"`
	SignupTime time.Time         `json:"signup_time"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

func (p Participant) Clone() Participant {
	c := p
	c.Metadata = maps.Clone(p.Metadata)
	return c
}
