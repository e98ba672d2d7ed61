package postgres

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"eventSignup/internal/config"
)

// DSN renders the database config as a postgres:// URL for the migrate driver.
func DSN(dbCfg *config.Database) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dbCfg.User, dbCfg.Password),
		Host:     dbCfg.Host + ":" + strconv.Itoa(dbCfg.Port),
		Path:     "/" + dbCfg.DBName,
		RawQuery: url.Values{"sslmode": []string{dbCfg.SSLMode}}.Encode(),
	}

	return u.String()
}

// RunMigrations applies all pending migrations and returns the resulting schema version.
func RunMigrations(dbCfg *config.Database) (uint, error) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", dbCfg.MigrationsPath),
		DSN(dbCfg),
	)
	if err != nil {
		return 0, fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migration version %d is dirty", version)
	}

	return version, nil
}
