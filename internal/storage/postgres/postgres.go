package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"eventSignup/internal/config"
	"eventSignup/internal/storage"
)

type Storage struct {
	DB *sql.DB
}

var (
	_ storage.EventStore       = (*EventStore)(nil)
	_ storage.ParticipantStore = (*ParticipantStore)(nil)
	_ storage.ArchiveStore     = (*ArchiveStore)(nil)
)

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Events() *EventStore {
	return &EventStore{db: s.DB}
}

func (s *Storage) Participants() *ParticipantStore {
	return &ParticipantStore{db: s.DB}
}

func (s *Storage) Archives() *ArchiveStore {
	return &ArchiveStore{db: s.DB}
}
