package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"gathr/backend/internal/i18n"
	"gathr/backend/internal/logger"
	"gathr/backend/internal/model"
	"gathr/backend/internal/notify"
	"gathr/backend/internal/repository"
	"gathr/backend/internal/service/translate"
)

// Settings keys for the translation provider.
const (
	KeyTranslateProvider  = "translate.provider"
	KeyTranslateAPIKey    = "translate.api_key"
	KeyTranslateBaseURL   = "translate.base_url"
	KeyTranslateModel     = "translate.model"
	KeyTranslateRateLimit = "translate.rate_limit"
	KeyTranslateAuto      = "translate.auto"
)

// Detached orchestration units are bounded by this timeout.
const requestTimeout = 2 * time.Minute

// sweepBatchSize caps how many stale rows one sweep pass requeues.
const sweepBatchSize = 50

// Resolution is the read-path outcome for one entity and viewer locale.
// Fields always carries displayable content: the original is the
// fallback whenever a translation is missing, pending, or failed.
type Resolution struct {
	Fields     map[string]string
	Translated bool
	Pending    bool
	Failed     bool
	LastError  string
}

// TranslationService orchestrates derived translations: it decides
// whether work is needed, invokes the translator port, persists the
// outcome, and reports to the guard and the notifier.
type TranslationService interface {
	// Request translates one (entity, target locale) pair. It is a
	// no-op when source and target match, when the target is not
	// configured, or when a row for the pair already exists. Errors
	// are swallowed: every outcome is observable through the store.
	Request(ctx context.Context, kind string, entityID int64, sourceLocale, targetLocale string)
	// Retry is the explicit failed-to-pending transition. The guard is
	// consulted first; a denial is returned to the caller and recorded
	// in the row.
	Retry(ctx context.Context, kind string, entityID int64, locale string) error
	// ScheduleAll fires one detached Request per configured target
	// locale. It never blocks and individual failures are isolated.
	ScheduleAll(kind string, entityID int64, sourceLocale string)
	// Resolve returns the best available content for a viewer locale.
	// A missing row triggers a lazy Request as a side effect.
	Resolve(ctx context.Context, kind string, entityID int64, originalFields map[string]string, originalLanguage, viewerLocale string) Resolution
	// Status lists all translation rows for an entity.
	Status(ctx context.Context, kind string, entityID int64) ([]model.Translation, error)
	// RequeueStalePending re-runs orchestration for pending rows older
	// than the given age (crash repair). Returns the requeued count.
	RequeueStalePending(ctx context.Context, olderThan time.Duration) (int, error)
	// AutoTranslateEnabled reports whether creation-time fan-out is on.
	AutoTranslateEnabled(ctx context.Context) bool
}

type translationService struct {
	translations repository.TranslationRepository
	settings     repository.SettingsRepository
	events       repository.EventRepository
	comments     repository.CommentRepository
	guard        *translate.Guard
	factory      translate.Factory
	hub          *notify.Hub
	locales      []string
}

// NewTranslationService creates a new translation service.
func NewTranslationService(
	translations repository.TranslationRepository,
	settings repository.SettingsRepository,
	events repository.EventRepository,
	comments repository.CommentRepository,
	guard *translate.Guard,
	factory translate.Factory,
	hub *notify.Hub,
	locales []string,
) TranslationService {
	return &translationService{
		translations: translations,
		settings:     settings,
		events:       events,
		comments:     comments,
		guard:        guard,
		factory:      factory,
		hub:          hub,
		locales:      locales,
	}
}

func (s *translationService) Request(ctx context.Context, kind string, entityID int64, sourceLocale, targetLocale string) {
	if targetLocale == "" || sourceLocale == targetLocale {
		return
	}
	if !i18n.Contains(s.locales, targetLocale) {
		logger.Debug("translation target not configured", "module", "service", "action", "translate", "resource", "translation", "result", "skipped", "kind", kind, "entity_id", entityID, "locale", targetLocale)
		return
	}

	existing, err := s.translations.Get(ctx, kind, entityID, targetLocale)
	if err != nil {
		logger.Warn("translation dedup lookup failed", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "kind", kind, "entity_id", entityID, "locale", targetLocale, "error", err)
		return
	}
	// The existence check is not a lock: two concurrent callers can
	// both pass it before either writes. The store's upsert on the
	// natural key makes the race converge to one row; the duplicate
	// provider call is an accepted cost.
	if existing != nil {
		logger.Debug("translation already present", "module", "service", "action", "translate", "resource", "translation", "result", "skipped", "kind", kind, "entity_id", entityID, "locale", targetLocale, "status", string(existing.Status))
		return
	}

	s.process(ctx, kind, entityID, sourceLocale, targetLocale)
}

// process runs one orchestration unit without the existence check.
// sourceLocale may be empty; the entity's original language is used.
func (s *translationService) process(ctx context.Context, kind string, entityID int64, sourceLocale, targetLocale string) {
	fields, originalLanguage, ok := s.sourceFields(ctx, kind, entityID)
	if !ok {
		return
	}
	if sourceLocale == "" {
		sourceLocale = originalLanguage
	}
	if sourceLocale == targetLocale {
		return
	}

	key := translate.GuardKey(kind, entityID, targetLocale)
	payload := 0
	for _, v := range fields {
		payload += translate.TextLength(v)
	}

	if d := s.guard.CanTranslate(key, payload); !d.Allowed {
		reason := d.Reason
		s.persist(ctx, kind, entityID, targetLocale, nil, model.StatusFailed, &reason)
		s.publish(kind, entityID, targetLocale, model.StatusFailed, nil, reason)
		logger.Warn("translation denied by guard", "module", "service", "action", "translate", "resource", "translation", "result", "denied", "key", key, "reason", reason, "payload_len", payload)
		return
	}

	// Written before the provider call so readers see "translating".
	s.persist(ctx, kind, entityID, targetLocale, nil, model.StatusPending, nil)
	s.publish(kind, entityID, targetLocale, model.StatusPending, nil, "")

	translator, err := s.newTranslator(ctx)
	if err != nil {
		s.fail(ctx, key, kind, entityID, targetLocale, err)
		return
	}

	translated, err := translator.TranslateFields(ctx, fields, sourceLocale, targetLocale)
	if err != nil {
		s.fail(ctx, key, kind, entityID, targetLocale, err)
		return
	}

	s.persist(ctx, kind, entityID, targetLocale, translated, model.StatusCompleted, nil)
	s.guard.MarkSuccess(key)
	s.publish(kind, entityID, targetLocale, model.StatusCompleted, translated, "")
	logger.Info("translation completed", "module", "service", "action", "translate", "resource", "translation", "result", "ok", "key", key, "source", sourceLocale)
}

func (s *translationService) fail(ctx context.Context, key, kind string, entityID int64, locale string, cause error) {
	msg := cause.Error()
	s.persist(ctx, kind, entityID, locale, nil, model.StatusFailed, &msg)
	s.guard.MarkFailure(key)
	s.publish(kind, entityID, locale, model.StatusFailed, nil, msg)
	logger.Warn("translation failed", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "key", key, "error", cause)
}

func (s *translationService) Retry(ctx context.Context, kind string, entityID int64, locale string) error {
	existing, err := s.translations.Get(ctx, kind, entityID, locale)
	if err != nil {
		return fmt.Errorf("get translation: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	// Only failed rows are retried. A pending row means an attempt is
	// already in flight (or the sweep will repair it); re-entering here
	// would race it with a duplicate provider call.
	if existing.Status != model.StatusFailed {
		return nil
	}

	fields, _, ok := s.sourceFields(ctx, kind, entityID)
	if !ok {
		return ErrNotFound
	}

	key := translate.GuardKey(kind, entityID, locale)
	payload := 0
	for _, v := range fields {
		payload += translate.TextLength(v)
	}
	if d := s.guard.CanTranslate(key, payload); !d.Allowed {
		reason := d.Reason
		s.persist(ctx, kind, entityID, locale, nil, model.StatusFailed, &reason)
		s.publish(kind, entityID, locale, model.StatusFailed, nil, reason)
		return fmt.Errorf("%w: %s", ErrTranslate, reason)
	}

	s.process(ctx, kind, entityID, "", locale)
	return nil
}

func (s *translationService) ScheduleAll(kind string, entityID int64, sourceLocale string) {
	for _, target := range i18n.Targets(s.locales, sourceLocale) {
		go func(target string) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("translation fan-out panicked", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "kind", kind, "entity_id", entityID, "locale", target, "panic", r)
				}
			}()
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			s.Request(ctx, kind, entityID, sourceLocale, target)
		}(target)
	}
}

func (s *translationService) Resolve(ctx context.Context, kind string, entityID int64, originalFields map[string]string, originalLanguage, viewerLocale string) Resolution {
	res := Resolution{Fields: originalFields}
	if viewerLocale == "" || viewerLocale == originalLanguage || !i18n.Contains(s.locales, viewerLocale) {
		return res
	}

	row, err := s.translations.Get(ctx, kind, entityID, viewerLocale)
	if err != nil {
		logger.Warn("translation resolve lookup failed", "module", "service", "action", "fetch", "resource", "translation", "result", "failed", "kind", kind, "entity_id", entityID, "locale", viewerLocale, "error", err)
		return res
	}

	if row == nil {
		// Lazy translation on read.
		go func() {
			lazyCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			s.Request(lazyCtx, kind, entityID, originalLanguage, viewerLocale)
		}()
		res.Pending = true
		return res
	}

	switch row.Status {
	case model.StatusPending:
		res.Pending = true
	case model.StatusCompleted:
		merged := make(map[string]string, len(originalFields))
		for name, original := range originalFields {
			if translated, ok := row.Fields[name]; ok && translated != "" {
				merged[name] = translated
			} else {
				merged[name] = original
			}
		}
		res.Fields = merged
		res.Translated = true
	case model.StatusFailed:
		res.Failed = true
		if row.LastError != nil {
			res.LastError = *row.LastError
		}
	}
	return res
}

func (s *translationService) Status(ctx context.Context, kind string, entityID int64) ([]model.Translation, error) {
	rows, err := s.translations.ListByEntity(ctx, kind, entityID)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return rows, nil
}

func (s *translationService) RequeueStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	rows, err := s.translations.ListStalePending(ctx, time.Now().Add(-olderThan), sweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list stale pending: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, row := range rows {
		g.Go(func() error {
			s.process(ctx, row.EntityKind, row.EntityID, "", row.Locale)
			return nil
		})
	}
	_ = g.Wait()

	if len(rows) > 0 {
		logger.Info("stale pending translations requeued", "module", "service", "action", "sweep", "resource", "translation", "result", "ok", "count", len(rows))
	}
	return len(rows), nil
}

func (s *translationService) AutoTranslateEnabled(ctx context.Context) bool {
	setting, err := s.settings.Get(ctx, KeyTranslateAuto)
	if err != nil || setting == nil {
		return true // default on
	}
	return setting.Value != "false"
}

func (s *translationService) sourceFields(ctx context.Context, kind string, entityID int64) (map[string]string, string, bool) {
	switch kind {
	case model.KindEvent:
		event, err := s.events.GetByID(ctx, entityID)
		if err != nil || event == nil {
			return nil, "", false
		}
		return event.TranslatableFields(), event.OriginalLanguage, true
	case model.KindComment:
		comment, err := s.comments.GetByID(ctx, entityID)
		if err != nil || comment == nil {
			return nil, "", false
		}
		return comment.TranslatableFields(), comment.OriginalLanguage, true
	default:
		return nil, "", false
	}
}

func (s *translationService) newTranslator(ctx context.Context) (translate.Translator, error) {
	cfg, err := s.providerConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s.factory(cfg)
}

func (s *translationService) providerConfig(ctx context.Context) (translate.Config, error) {
	var cfg translate.Config

	settings, err := s.settings.GetByPrefix(ctx, "translate.")
	if err != nil {
		return cfg, fmt.Errorf("get translate settings: %w", err)
	}

	settingsMap := make(map[string]string, len(settings))
	for _, setting := range settings {
		settingsMap[setting.Key] = setting.Value
	}

	cfg.Provider = settingsMap[KeyTranslateProvider]
	if cfg.Provider == "" {
		cfg.Provider = translate.ProviderOpenAI
	}

	cfg.APIKey = settingsMap[KeyTranslateAPIKey]
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("translation API key is not configured")
	}

	cfg.BaseURL = settingsMap[KeyTranslateBaseURL]

	cfg.Model = settingsMap[KeyTranslateModel]
	if cfg.Model == "" {
		return cfg, fmt.Errorf("translation model is not configured")
	}

	return cfg, nil
}

func (s *translationService) persist(ctx context.Context, kind string, entityID int64, locale string, fields map[string]string, status model.TranslationStatus, lastError *string) {
	if err := s.translations.Upsert(ctx, kind, entityID, locale, fields, status, lastError); err != nil {
		logger.Warn("translation upsert failed", "module", "service", "action", "save", "resource", "translation", "result", "failed", "kind", kind, "entity_id", entityID, "locale", locale, "status", string(status), "error", err)
	}
}

func (s *translationService) publish(kind string, entityID int64, locale string, status model.TranslationStatus, fields map[string]string, errMsg string) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(notify.Update{
		EntityKind: kind,
		EntityID:   entityID,
		Locale:     locale,
		Status:     string(status),
		Fields:     fields,
		Error:      errMsg,
	})
}
