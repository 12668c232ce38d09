// Package testutil provides shared helpers for repository tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gathr/backend/internal/db"
	"gathr/backend/internal/model"
	"gathr/backend/internal/repository"
	"gathr/backend/internal/snowflake"

	"github.com/stretchr/testify/require"
)

var snowflakeOnce sync.Once

// NewTestDB opens a fresh migrated sqlite database in a temp directory.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(1); err != nil {
			t.Fatalf("init snowflake: %v", err)
		}
	})

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return database
}

// SeedEvent inserts an event and returns it.
func SeedEvent(t *testing.T, database *sql.DB, event model.Event) model.Event {
	t.Helper()

	if event.Title == "" {
		event.Title = "Community meetup"
	}
	if event.Description == "" {
		event.Description = "An evening of talks."
	}
	if event.OriginalLanguage == "" {
		event.OriginalLanguage = "en"
	}
	if event.StartsAt.IsZero() {
		event.StartsAt = time.Now().Add(24 * time.Hour)
	}

	created, err := repository.NewEventRepository(database).Create(context.Background(), event)
	require.NoError(t, err)
	return created
}

// SeedComment inserts a comment under an event and returns it.
func SeedComment(t *testing.T, database *sql.DB, comment model.Comment) model.Comment {
	t.Helper()

	if comment.Body == "" {
		comment.Body = "Looking forward to it!"
	}
	if comment.OriginalLanguage == "" {
		comment.OriginalLanguage = "en"
	}

	created, err := repository.NewCommentRepository(database).Create(context.Background(), comment)
	require.NoError(t, err)
	return created
}
