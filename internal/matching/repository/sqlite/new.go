package sqlite

import (
	"database/sql"
	"fmt"

	"campus-lostfound/internal/matching/repository"
	"campus-lostfound/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the matching engine:
// the match store plus the read-only item view, both over the shared database.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("matching/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("matching/repository/sqlite.%s", method)
}
