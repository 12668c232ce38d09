package repository

import (
	"context"
	"database/sql"
	"time"

	"gathr/backend/internal/model"
	"gathr/backend/internal/snowflake"
)

type EventRepository interface {
	Create(ctx context.Context, event model.Event) (model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Delete(ctx context.Context, id int64) error
}

type eventRepository struct {
	db dbtx
}

func NewEventRepository(db dbtx) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event model.Event) (model.Event, error) {
	event.ID = snowflake.NextID()
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	var endsAt any
	if event.EndsAt != nil {
		endsAt = formatTime(*event.EndsAt)
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO events (id, original_language, title, description, location, starts_at, ends_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.OriginalLanguage, event.Title, event.Description, event.Location,
		formatTime(event.StartsAt), endsAt, formatTime(now), formatTime(now),
	)
	if err != nil {
		return model.Event{}, err
	}
	return event, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, original_language, title, description, location, starts_at, ends_at, created_at, updated_at
		 FROM events WHERE id = ?`,
		id,
	)

	event, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, original_language, title, description, location, starts_at, ends_at, created_at, updated_at
		 FROM events ORDER BY starts_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

func scanEvent(scan func(dest ...any) error) (model.Event, error) {
	var e model.Event
	var location sql.NullString
	var endsAt sql.NullString
	var startsAt, createdAt, updatedAt string

	err := scan(
		&e.ID, &e.OriginalLanguage, &e.Title, &e.Description, &location,
		&startsAt, &endsAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Event{}, err
	}

	if location.Valid {
		e.Location = &location.String
	}
	if endsAt.Valid {
		e.EndsAt = parseTimePtr(endsAt.String)
	}
	e.StartsAt, _ = parseTime(startsAt)
	e.CreatedAt, _ = parseTime(createdAt)
	e.UpdatedAt, _ = parseTime(updatedAt)

	return e, nil
}
