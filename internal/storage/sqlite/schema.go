package sqlite

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The unique index on
// (lost_item_id, found_item_id) backs up the duplicate-pair check in match
// discovery: two overlapping discovery runs cannot both insert the same pair.
// Matches deliberately carry no ON DELETE clause — a match survives the
// deletion of either item and joins it as absent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    type          TEXT NOT NULL CHECK (type IN ('lost', 'found')),
    name          TEXT NOT NULL,
    description   TEXT NOT NULL DEFAULT '',
    category      TEXT NOT NULL,
    location      TEXT NOT NULL,
    contact       TEXT NOT NULL DEFAULT '',
    date_occurred DATETIME NOT NULL,
    status        TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'matched', 'resolved')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_items_type_status ON items(type, status);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);

CREATE TABLE IF NOT EXISTS matches (
    id            TEXT PRIMARY KEY,
    lost_item_id  TEXT NOT NULL,
    found_item_id TEXT NOT NULL,
    match_score   INTEGER NOT NULL CHECK (match_score BETWEEN 0 AND 100),
    status        TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'confirmed', 'rejected')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_pair
    ON matches(lost_item_id, found_item_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
