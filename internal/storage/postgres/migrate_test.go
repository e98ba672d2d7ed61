package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventSignup/internal/config"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	dsn := DSN(&config.Database{
		Host:     "db",
		Port:     5433,
		User:     "signup",
		Password: "p@ss word",
		DBName:   "event_signup",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://signup:p%40ss%20word@db:5433/event_signup?sslmode=disable", dsn)
}
