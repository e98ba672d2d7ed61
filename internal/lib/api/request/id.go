package request

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingID = errors.New("id is required")
	ErrInvalidID = errors.New("invalid id format")
)

// ID reads the URL parameter name and checks that it is a UUID.
func ID(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return "", ErrMissingID
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidID
	}

	return id.String(), nil
}
