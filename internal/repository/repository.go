package repository

import (
	"context"
	"database/sql"

	"binwatch"
)

// ReadingStore is the append-only collection of waste readings.
type ReadingStore interface {
	Append(ctx context.Context, r binwatch.Reading) (binwatch.Reading, error)
	Recent(ctx context.Context, limit int) ([]binwatch.Reading, error)
	InRange(ctx context.Context, days int) ([]binwatch.Reading, error)
	ByBin(ctx context.Context, binID string) ([]binwatch.Reading, error)
}

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*binwatch.User, error)
}

type Repository struct {
	Readings ReadingStore
	Auth     Authorization
}

// NewRepository wires the JSON-file reading store and the SQLite user store.
func NewRepository(store ReadingStore, db *sql.DB) *Repository {
	return &Repository{
		Readings: store,
		Auth:     NewUserRepository(db),
	}
}
