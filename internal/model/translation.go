package model

import "time"

// Entity kinds that can own Translation rows.
const (
	KindEvent   = "event"
	KindComment = "comment"
)

// TranslationStatus is the lifecycle state of a Translation row.
type TranslationStatus string

const (
	StatusPending   TranslationStatus = "pending"
	StatusCompleted TranslationStatus = "completed"
	StatusFailed    TranslationStatus = "failed"
)

// Translation is a derived artifact keyed by (entity_kind, entity_id,
// locale). At most one row exists per key; writes are upserts on that
// natural key. A locale equal to the entity's original language never
// has a row.
type Translation struct {
	ID         int64
	EntityKind string
	EntityID   int64
	Locale     string
	Fields     map[string]string
	Status     TranslationStatus
	LastError  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
