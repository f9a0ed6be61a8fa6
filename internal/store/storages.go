package store

import "github.com/dsemenov/go-shield/internal/logger"

// Storages bundles the repositories behind a single injection point.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewPostgresStorages wires the PostgreSQL-backed repositories.
func NewPostgresStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
	}
}

// NewMemoryStorages wires the in-memory repositories. Used when no database
// DSN is configured and in tests.
func NewMemoryStorages(log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewMemoryUserRepository(log),
		ItemRepository: NewMemoryItemRepository(log),
	}
}
