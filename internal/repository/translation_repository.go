package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"gathr/backend/internal/model"
	"gathr/backend/internal/snowflake"
)

//go:generate mockgen -source=translation_repository.go -destination=mock/translation_repository.go -package=mock

// TranslationRepository stores derived translation rows keyed by
// (entity_kind, entity_id, locale). All writes are upserts on that
// natural key, so concurrent writers converge to a single row.
type TranslationRepository interface {
	Get(ctx context.Context, kind string, entityID int64, locale string) (*model.Translation, error)
	ListByEntity(ctx context.Context, kind string, entityID int64) ([]model.Translation, error)
	Upsert(ctx context.Context, kind string, entityID int64, locale string, fields map[string]string, status model.TranslationStatus, lastError *string) error
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Translation, error)
	DeleteByEntity(ctx context.Context, kind string, entityID int64) error
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Get(ctx context.Context, kind string, entityID int64, locale string) (*model.Translation, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, entity_kind, entity_id, locale, fields, status, last_error, created_at, updated_at
		 FROM translations WHERE entity_kind = ? AND entity_id = ? AND locale = ?`,
		kind, entityID, locale,
	)

	t, err := scanTranslation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *translationRepository) ListByEntity(ctx context.Context, kind string, entityID int64) ([]model.Translation, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, entity_kind, entity_id, locale, fields, status, last_error, created_at, updated_at
		 FROM translations WHERE entity_kind = ? AND entity_id = ? ORDER BY locale ASC`,
		kind, entityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTranslations(rows)
}

func (r *translationRepository) Upsert(ctx context.Context, kind string, entityID int64, locale string, fields map[string]string, status model.TranslationStatus, lastError *string) error {
	if fields == nil {
		fields = map[string]string{}
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	id := snowflake.NextID()
	now := formatTime(time.Now())

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO translations (id, entity_kind, entity_id, locale, fields, status, last_error, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(entity_kind, entity_id, locale) DO UPDATE SET
		   fields = excluded.fields,
		   status = excluded.status,
		   last_error = excluded.last_error,
		   updated_at = excluded.updated_at`,
		id, kind, entityID, locale, string(encoded), string(status), lastError, now, now,
	)
	return err
}

func (r *translationRepository) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Translation, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, entity_kind, entity_id, locale, fields, status, last_error, created_at, updated_at
		 FROM translations WHERE status = ? AND updated_at < ? ORDER BY updated_at ASC LIMIT ?`,
		string(model.StatusPending), formatTime(olderThan), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTranslations(rows)
}

func (r *translationRepository) DeleteByEntity(ctx context.Context, kind string, entityID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM translations WHERE entity_kind = ? AND entity_id = ?`, kind, entityID)
	return err
}

func collectTranslations(rows *sql.Rows) ([]model.Translation, error) {
	var translations []model.Translation
	for rows.Next() {
		t, err := scanTranslation(rows.Scan)
		if err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}
	return translations, rows.Err()
}

func scanTranslation(scan func(dest ...any) error) (model.Translation, error) {
	var t model.Translation
	var fields, status, createdAt, updatedAt string
	var lastError sql.NullString

	err := scan(&t.ID, &t.EntityKind, &t.EntityID, &t.Locale, &fields, &status, &lastError, &createdAt, &updatedAt)
	if err != nil {
		return model.Translation{}, err
	}

	if err := json.Unmarshal([]byte(fields), &t.Fields); err != nil {
		return model.Translation{}, fmt.Errorf("decode fields: %w", err)
	}
	t.Status = model.TranslationStatus(status)
	if lastError.Valid {
		t.LastError = &lastError.String
	}
	t.CreatedAt, _ = parseTime(createdAt)
	t.UpdatedAt, _ = parseTime(updatedAt)

	return t, nil
}
