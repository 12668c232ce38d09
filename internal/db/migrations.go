package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS events (
  id INTEGER PRIMARY KEY,
  original_language TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  location TEXT,
  starts_at TEXT NOT NULL,
  ends_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events(starts_at);

CREATE TABLE IF NOT EXISTS comments (
  id INTEGER PRIMARY KEY,
  event_id INTEGER NOT NULL,
  original_language TEXT NOT NULL,
  body TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_comments_event_id ON comments(event_id);

CREATE TABLE IF NOT EXISTS translations (
  id INTEGER PRIMARY KEY,
  entity_kind TEXT NOT NULL,
  entity_id INTEGER NOT NULL,
  locale TEXT NOT NULL,
  fields TEXT NOT NULL,
  status TEXT NOT NULL,
  last_error TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_translations_entity_locale
  ON translations(entity_kind, entity_id, locale);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: index translations by status for the background sweep
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_translations_status ON translations(status, updated_at)`); err != nil {
		return fmt.Errorf("create idx_translations_status: %w", err)
	}

	// Migration 2: index translations by entity for status listings
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_translations_entity ON translations(entity_kind, entity_id)`); err != nil {
		return fmt.Errorf("create idx_translations_entity: %w", err)
	}

	return nil
}
