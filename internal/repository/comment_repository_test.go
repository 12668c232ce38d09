package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gathr/backend/internal/model"
	"gathr/backend/internal/repository"
	"gathr/backend/internal/repository/testutil"
)

func TestCommentRepositoryCreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewCommentRepository(database)
	ctx := context.Background()

	event := testutil.SeedEvent(t, database, model.Event{})

	created, err := repo.Create(ctx, model.Comment{
		EventID:          event.ID,
		OriginalLanguage: "fr",
		Body:             "On y sera",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, event.ID, got.EventID)
	require.Equal(t, "fr", got.OriginalLanguage)
	require.Equal(t, "On y sera", got.Body)
	require.False(t, got.CreatedAt.IsZero())
}

func TestCommentRepositoryGetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewCommentRepository(database)

	got, err := repo.GetByID(context.Background(), 12345)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCommentRepositoryListByEvent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewCommentRepository(database)
	ctx := context.Background()

	first := testutil.SeedEvent(t, database, model.Event{})
	second := testutil.SeedEvent(t, database, model.Event{})

	testutil.SeedComment(t, database, model.Comment{EventID: first.ID, Body: "a"})
	testutil.SeedComment(t, database, model.Comment{EventID: first.ID, Body: "b"})
	testutil.SeedComment(t, database, model.Comment{EventID: second.ID, Body: "c"})

	comments, err := repo.ListByEvent(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	for _, comment := range comments {
		require.Equal(t, first.ID, comment.EventID)
	}

	comments, err = repo.ListByEvent(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func TestCommentRepositoryDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewCommentRepository(database)
	ctx := context.Background()

	event := testutil.SeedEvent(t, database, model.Event{})
	comment := testutil.SeedComment(t, database, model.Comment{EventID: event.ID})

	require.NoError(t, repo.Delete(ctx, comment.ID))

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
