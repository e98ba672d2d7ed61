package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventValidate(t *testing.T) {
	t.Parallel()

	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	testCases := []struct {
		name   string
		window SignupWindow
		err    error
	}{
		{name: "No window"},
		{name: "Only opens", window: SignupWindow{OpensAt: &late}},
		{name: "Only closes", window: SignupWindow{ClosesAt: &early}},
		{name: "Same instant", window: SignupWindow{OpensAt: &early, ClosesAt: &early}},
		{name: "Ordered", window: SignupWindow{OpensAt: &early, ClosesAt: &late}},
		{name: "Inverted", window: SignupWindow{OpensAt: &late, ClosesAt: &early}, err: ErrSignupWindowOrder},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, Event{SignupWindow: tc.window}.Validate(), tc.err)
		})
	}
}

func TestEventCloneIsDeep(t *testing.T) {
	t.Parallel()

	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limit := 10

	original := Event{
		EndDate:         &end,
		MaxParticipants: &limit,
		Quotas:          map[string]int{"members": 4},
		Metadata:        map[string]string{"color": "red"},
	}

	c := original.Clone()
	*c.EndDate = end.Add(time.Hour)
	*c.MaxParticipants = 1
	c.Quotas["members"] = 0
	c.Metadata["color"] = "blue"

	assert.Equal(t, end, *original.EndDate)
	assert.Equal(t, 10, *original.MaxParticipants)
	assert.Equal(t, 4, original.Quotas["members"])
	assert.Equal(t, "red", original.Metadata["color"])
}

func TestArchivedEventCloneIsDeep(t *testing.T) {
	t.Parallel()

	a := ArchivedEvent{OriginalEvent: Event{Metadata: map[string]string{"k": "v"}}}
	c := a.Clone()
	c.OriginalEvent.Metadata["k"] = "changed"

	assert.Equal(t, "v", a.OriginalEvent.Metadata["k"])
}
