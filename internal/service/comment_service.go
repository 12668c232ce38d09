package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"gathr/backend/internal/i18n"
	"gathr/backend/internal/model"
	"gathr/backend/internal/repository"
)

// CommentView is a comment rendered for one viewer locale.
type CommentView struct {
	Comment    model.Comment
	Body       string
	Translated bool
	Pending    bool
	Failed     bool
}

type CommentService interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	ListByEvent(ctx context.Context, eventID int64, viewerLocale string) ([]CommentView, error)
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	comments     repository.CommentRepository
	events       repository.EventRepository
	translations repository.TranslationRepository
	translator   TranslationService
	locales      []string
	sanitizer    *bluemonday.Policy
}

func NewCommentService(comments repository.CommentRepository, events repository.EventRepository, translations repository.TranslationRepository, translator TranslationService, locales []string) CommentService {
	return &commentService{
		comments:     comments,
		events:       events,
		translations: translations,
		translator:   translator,
		locales:      locales,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

func (s *commentService) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	comment.Body = strings.TrimSpace(s.sanitizer.Sanitize(comment.Body))
	if comment.Body == "" {
		return model.Comment{}, ErrInvalid
	}
	if comment.OriginalLanguage == "" {
		comment.OriginalLanguage = i18n.DefaultLocale
	}
	if !i18n.Contains(s.locales, comment.OriginalLanguage) {
		return model.Comment{}, ErrInvalid
	}

	event, err := s.events.GetByID(ctx, comment.EventID)
	if err != nil {
		return model.Comment{}, fmt.Errorf("check event: %w", err)
	}
	if event == nil {
		return model.Comment{}, ErrNotFound
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	if s.translator.AutoTranslateEnabled(ctx) {
		s.translator.ScheduleAll(model.KindComment, created.ID, created.OriginalLanguage)
	}
	return created, nil
}

func (s *commentService) ListByEvent(ctx context.Context, eventID int64, viewerLocale string) ([]CommentView, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event == nil {
		return nil, ErrNotFound
	}

	comments, err := s.comments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		res := s.translator.Resolve(ctx, model.KindComment, comment.ID, comment.TranslatableFields(), comment.OriginalLanguage, viewerLocale)
		views = append(views, CommentView{
			Comment:    comment,
			Body:       res.Fields["body"],
			Translated: res.Translated,
			Pending:    res.Pending,
			Failed:     res.Failed,
		})
	}
	return views, nil
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return ErrNotFound
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if err := s.translations.DeleteByEntity(ctx, model.KindComment, id); err != nil {
		return fmt.Errorf("delete comment translations: %w", err)
	}
	return nil
}
