package repository

import (
	"context"
	"database/sql"
	"time"

	"gathr/backend/internal/model"
	"gathr/backend/internal/snowflake"
)

type CommentRepository interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db dbtx
}

func NewCommentRepository(db dbtx) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	comment.ID = snowflake.NextID()
	comment.CreatedAt = time.Now()

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO comments (id, event_id, original_language, body, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.EventID, comment.OriginalLanguage, comment.Body, formatTime(comment.CreatedAt),
	)
	if err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, event_id, original_language, body, created_at FROM comments WHERE id = ?`,
		id,
	)

	var c model.Comment
	var createdAt string
	err := row.Scan(&c.ID, &c.EventID, &c.OriginalLanguage, &c.Body, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.CreatedAt, _ = parseTime(createdAt)

	return &c, nil
}

func (r *commentRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Comment, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, event_id, original_language, body, created_at
		 FROM comments WHERE event_id = ? ORDER BY created_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.EventID, &c.OriginalLanguage, &c.Body, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = parseTime(createdAt)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	return err
}
