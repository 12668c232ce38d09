package notify_test

import (
	"testing"
	"time"

	"gathr/backend/internal/notify"

	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := notify.NewHub()

	sub := hub.Subscribe("event", 1)
	defer sub.Close()

	hub.Publish(notify.Update{
		EntityKind: "event",
		EntityID:   1,
		Locale:     "fr",
		Status:     "completed",
		Fields:     map[string]string{"title": "Rencontre"},
	})

	select {
	case u := <-sub.C:
		require.Equal(t, "fr", u.Locale)
		require.Equal(t, "completed", u.Status)
		require.Equal(t, "Rencontre", u.Fields["title"])
	case <-time.After(time.Second):
		t.Fatal("expected an update")
	}
}

func TestHub_TopicsAreIsolated(t *testing.T) {
	hub := notify.NewHub()

	eventSub := hub.Subscribe("event", 1)
	defer eventSub.Close()
	otherSub := hub.Subscribe("event", 2)
	defer otherSub.Close()

	hub.Publish(notify.Update{EntityKind: "event", EntityID: 2, Locale: "hi", Status: "completed"})

	select {
	case <-eventSub.C:
		t.Fatal("update leaked across topics")
	case <-time.After(50 * time.Millisecond):
	}

	select {
	case u := <-otherSub.C:
		require.Equal(t, int64(2), u.EntityID)
	case <-time.After(time.Second):
		t.Fatal("expected an update on the matching topic")
	}
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := notify.NewHub()

	sub := hub.Subscribe("event", 1)
	defer sub.Close()

	// Publish well past the buffer; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(notify.Update{EntityKind: "event", EntityID: 1, Locale: "fr", Status: "pending"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestHub_CloseUnsubscribes(t *testing.T) {
	hub := notify.NewHub()

	sub := hub.Subscribe("comment", 7)
	require.Equal(t, 1, hub.Subscribers("comment", 7))

	sub.Close()
	require.Zero(t, hub.Subscribers("comment", 7))

	// Closing twice is safe.
	sub.Close()

	// Channel is closed after unsubscribe.
	_, open := <-sub.C
	require.False(t, open)
}
