package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gathr/backend/internal/i18n"
	"gathr/backend/internal/model"
	"gathr/backend/internal/repository"
	"gathr/backend/internal/service"
)

func newEventService(t *testing.T, f *serviceFixture) (service.EventService, repository.EventRepository) {
	t.Helper()
	events := repository.NewEventRepository(f.database)
	comments := repository.NewCommentRepository(f.database)
	return service.NewEventService(events, comments, f.translations, f.svc, i18n.Locales), events
}

func TestEventServiceCreate(t *testing.T) {
	t.Run("creates and fans out translations", func(t *testing.T) {
		f := newServiceFixture(t)
		svc, _ := newEventService(t, f)
		ctx := context.Background()

		created, err := svc.Create(ctx, model.Event{
			OriginalLanguage: "en",
			Title:            "Street food night",
			Description:      "Local vendors, live music.",
			StartsAt:         time.Now().Add(48 * time.Hour),
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		want := len(i18n.Targets(i18n.Locales, "en"))
		deadline := time.Now().Add(5 * time.Second)
		for {
			rows, listErr := f.translations.ListByEntity(ctx, model.KindEvent, created.ID)
			require.NoError(t, listErr)
			if len(rows) == want {
				break
			}
			require.True(t, time.Now().Before(deadline), "fan-out incomplete: %d of %d", len(rows), want)
			time.Sleep(20 * time.Millisecond)
		}
	})

	t.Run("skips fan-out when auto translate is off", func(t *testing.T) {
		f := newServiceFixture(t)
		svc, _ := newEventService(t, f)
		ctx := context.Background()

		require.NoError(t, f.settings.Set(ctx, service.KeyTranslateAuto, "false"))

		created, err := svc.Create(ctx, model.Event{
			OriginalLanguage: "en",
			Title:            "Book swap",
			Description:      "Bring one, take one.",
			StartsAt:         time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)
		rows, err := f.translations.ListByEntity(ctx, model.KindEvent, created.ID)
		require.NoError(t, err)
		require.Empty(t, rows)
		require.Zero(t, f.stub.Calls())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		f := newServiceFixture(t)
		svc, _ := newEventService(t, f)
		ctx := context.Background()
		starts := time.Now().Add(time.Hour)
		past := starts.Add(-2 * time.Hour)

		cases := []model.Event{
			{Title: "", Description: "d", StartsAt: starts},
			{Title: "t", OriginalLanguage: "xx", StartsAt: starts},
			{Title: "t", StartsAt: time.Time{}},
			{Title: "t", StartsAt: starts, EndsAt: &past},
		}
		for _, event := range cases {
			_, err := svc.Create(ctx, event)
			require.ErrorIs(t, err, service.ErrInvalid)
		}
	})

	t.Run("strips markup from title and description", func(t *testing.T) {
		f := newServiceFixture(t)
		svc, _ := newEventService(t, f)

		created, err := svc.Create(context.Background(), model.Event{
			OriginalLanguage: "en",
			Title:            `<script>alert(1)</script>Garage sale`,
			Description:      `<b>Everything</b> must go`,
			StartsAt:         time.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		require.Equal(t, "Garage sale", created.Title)
		require.Equal(t, "Everything must go", created.Description)
	})
}

func TestEventServiceGet(t *testing.T) {
	t.Run("original locale returns original content", func(t *testing.T) {
		f := newServiceFixture(t)
		svc, _ := newEventService(t, f)

		view, err := svc.Get(context.Background(), f.event.ID, "en")
		require.NoError(t, err)
		require.Equal(t, "Neighborhood cleanup", view.Title)
		require.False(t, view.Translated)
	})

	t.Run("translated locale returns translated content", func(t *testing.T) {
		f := newServiceFixture(t)
		svc, _ := newEventService(t, f)
		ctx := context.Background()

		f.svc.Request(ctx, model.KindEvent, f.event.ID, "en", "de")

		view, err := svc.Get(ctx, f.event.ID, "de")
		require.NoError(t, err)
		require.True(t, view.Translated)
		require.Equal(t, "[de] Neighborhood cleanup", view.Title)
	})

	t.Run("missing event returns not found", func(t *testing.T) {
		f := newServiceFixture(t)
		svc, _ := newEventService(t, f)

		_, err := svc.Get(context.Background(), 999999, "en")
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestEventServiceDelete(t *testing.T) {
	f := newServiceFixture(t)
	svc, events := newEventService(t, f)
	ctx := context.Background()

	f.svc.Request(ctx, model.KindEvent, f.event.ID, "en", "fr")
	f.svc.Request(ctx, model.KindComment, f.comment.ID, "en", "fr")

	require.NoError(t, svc.Delete(ctx, f.event.ID))

	gone, err := events.GetByID(ctx, f.event.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	eventRows, err := f.translations.ListByEntity(ctx, model.KindEvent, f.event.ID)
	require.NoError(t, err)
	require.Empty(t, eventRows)

	commentRows, err := f.translations.ListByEntity(ctx, model.KindComment, f.comment.ID)
	require.NoError(t, err)
	require.Empty(t, commentRows)

	require.ErrorIs(t, svc.Delete(ctx, f.event.ID), service.ErrNotFound)
}
