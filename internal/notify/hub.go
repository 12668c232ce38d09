// Package notify fans translation lifecycle updates out to connected
// viewers. The hub is best-effort: a missed update is recoverable
// because the viewer can always re-resolve from the store, so delivery
// is non-blocking and at most once.
package notify

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"gathr/backend/internal/logger"
)

// subscriberBuffer is the per-subscriber channel capacity. When a
// subscriber falls behind, further updates for it are dropped.
const subscriberBuffer = 8

// Update describes one translation state transition for an entity.
type Update struct {
	EntityKind string            `json:"entityKind"`
	EntityID   int64             `json:"entityId"`
	Locale     string            `json:"locale"`
	Status     string            `json:"status"`
	Fields     map[string]string `json:"fields,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Subscription is one viewer's feed of updates for a single entity.
type Subscription struct {
	ID string
	C  <-chan Update

	hub   *Hub
	topic string
	ch    chan Update
	once  sync.Once
}

// Close detaches the subscription from the hub.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.topic, s.ID)
	})
}

// Hub is an in-process topic-per-entity publish/subscribe channel.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[string]chan Update
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[string]chan Update),
	}
}

func topicKey(kind string, entityID int64) string {
	return fmt.Sprintf("%s:%d", kind, entityID)
}

// Subscribe registers a viewer for updates about one entity.
func (h *Hub) Subscribe(kind string, entityID int64) *Subscription {
	topic := topicKey(kind, entityID)
	ch := make(chan Update, subscriberBuffer)
	sub := &Subscription{
		ID:    uuid.NewString(),
		C:     ch,
		hub:   h,
		topic: topic,
		ch:    ch,
	}

	h.mu.Lock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[string]chan Update)
		h.topics[topic] = subs
	}
	subs[sub.ID] = ch
	h.mu.Unlock()

	logger.Debug("notify subscribed", "module", "notify", "action", "subscribe", "resource", "translation", "result", "ok", "topic", topic, "subscriber", sub.ID)
	return sub
}

func (h *Hub) unsubscribe(topic, id string) {
	h.mu.Lock()
	if subs, ok := h.topics[topic]; ok {
		if ch, ok := subs[id]; ok {
			delete(subs, id)
			close(ch)
		}
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
	h.mu.Unlock()
}

// Publish delivers an update to every subscriber of the entity's topic.
// Slow subscribers are skipped rather than blocked on.
func (h *Hub) Publish(u Update) {
	topic := topicKey(u.EntityKind, u.EntityID)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.topics[topic] {
		select {
		case ch <- u:
		default:
			logger.Debug("notify dropped update", "module", "notify", "action", "publish", "resource", "translation", "result", "dropped", "topic", topic, "subscriber", id)
		}
	}
}

// Subscribers reports the subscriber count for an entity's topic.
func (h *Hub) Subscribers(kind string, entityID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topicKey(kind, entityID)])
}
