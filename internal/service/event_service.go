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

// EventView is an event rendered for one viewer locale.
type EventView struct {
	Event       model.Event
	Title       string
	Description string
	Translated  bool
	Pending     bool
	Failed      bool
}

type EventService interface {
	Create(ctx context.Context, event model.Event) (model.Event, error)
	Get(ctx context.Context, id int64, viewerLocale string) (EventView, error)
	List(ctx context.Context, viewerLocale string) ([]EventView, error)
	Delete(ctx context.Context, id int64) error
}

type eventService struct {
	events       repository.EventRepository
	comments     repository.CommentRepository
	translations repository.TranslationRepository
	translator   TranslationService
	locales      []string
	sanitizer    *bluemonday.Policy
}

func NewEventService(events repository.EventRepository, comments repository.CommentRepository, translations repository.TranslationRepository, translator TranslationService, locales []string) EventService {
	return &eventService{
		events:       events,
		comments:     comments,
		translations: translations,
		translator:   translator,
		locales:      locales,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

func (s *eventService) Create(ctx context.Context, event model.Event) (model.Event, error) {
	event.Title = strings.TrimSpace(s.sanitizer.Sanitize(event.Title))
	event.Description = strings.TrimSpace(s.sanitizer.Sanitize(event.Description))
	if event.Title == "" {
		return model.Event{}, ErrInvalid
	}
	if event.OriginalLanguage == "" {
		event.OriginalLanguage = i18n.DefaultLocale
	}
	if !i18n.Contains(s.locales, event.OriginalLanguage) {
		return model.Event{}, ErrInvalid
	}
	if event.StartsAt.IsZero() {
		return model.Event{}, ErrInvalid
	}
	if event.EndsAt != nil && event.EndsAt.Before(event.StartsAt) {
		return model.Event{}, ErrInvalid
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return model.Event{}, fmt.Errorf("create event: %w", err)
	}

	if s.translator.AutoTranslateEnabled(ctx) {
		s.translator.ScheduleAll(model.KindEvent, created.ID, created.OriginalLanguage)
	}
	return created, nil
}

func (s *eventService) Get(ctx context.Context, id int64, viewerLocale string) (EventView, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return EventView{}, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return EventView{}, ErrNotFound
	}
	return s.view(ctx, *event, viewerLocale), nil
}

func (s *eventService) List(ctx context.Context, viewerLocale string) ([]EventView, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	views := make([]EventView, 0, len(events))
	for _, event := range events {
		views = append(views, s.view(ctx, event, viewerLocale))
	}
	return views, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return ErrNotFound
	}
	comments, err := s.comments.ListByEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	// Comments cascade in the database; translation rows do not, so
	// remove them here.
	if err := s.translations.DeleteByEntity(ctx, model.KindEvent, id); err != nil {
		return fmt.Errorf("delete event translations: %w", err)
	}
	for _, comment := range comments {
		if err := s.translations.DeleteByEntity(ctx, model.KindComment, comment.ID); err != nil {
			return fmt.Errorf("delete comment translations: %w", err)
		}
	}
	return nil
}

func (s *eventService) view(ctx context.Context, event model.Event, viewerLocale string) EventView {
	res := s.translator.Resolve(ctx, model.KindEvent, event.ID, event.TranslatableFields(), event.OriginalLanguage, viewerLocale)
	return EventView{
		Event:       event,
		Title:       res.Fields["title"],
		Description: res.Fields["description"],
		Translated:  res.Translated,
		Pending:     res.Pending,
		Failed:      res.Failed,
	}
}
