package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"gathr/backend/internal/handler"
	"gathr/backend/internal/i18n"
	"gathr/backend/internal/model"
	"gathr/backend/internal/notify"
	"gathr/backend/internal/service"
	"gathr/backend/internal/service/translate"
)

type translationServiceStub struct {
	retryErr error
	rows     []model.Translation
}

func (s *translationServiceStub) Request(ctx context.Context, kind string, entityID int64, sourceLocale, targetLocale string) {
}

func (s *translationServiceStub) Retry(ctx context.Context, kind string, entityID int64, locale string) error {
	return s.retryErr
}

func (s *translationServiceStub) ScheduleAll(kind string, entityID int64, sourceLocale string) {}

func (s *translationServiceStub) Resolve(ctx context.Context, kind string, entityID int64, originalFields map[string]string, originalLanguage, viewerLocale string) service.Resolution {
	return service.Resolution{Fields: originalFields}
}

func (s *translationServiceStub) Status(ctx context.Context, kind string, entityID int64) ([]model.Translation, error) {
	return s.rows, nil
}

func (s *translationServiceStub) RequeueStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	return 0, nil
}

func (s *translationServiceStub) AutoTranslateEnabled(ctx context.Context) bool { return true }

func TestTranslationHandlerLocales(t *testing.T) {
	h := handler.NewTranslationHandler(&translationServiceStub{}, notify.NewHub(), i18n.Locales)

	rec := doRequest(t, http.MethodGet, "/api/locales", "", h.Locales, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, len(i18n.Locales))
	require.Equal(t, "en", resp[0]["tag"])
	require.Equal(t, "English", resp[0]["name"])
}

func TestTranslationHandlerStatus(t *testing.T) {
	errMsg := "cooldown active"
	stub := &translationServiceStub{rows: []model.Translation{
		{EntityKind: model.KindEvent, EntityID: 7, Locale: "fr", Status: model.StatusCompleted, Fields: map[string]string{"title": "Fête"}},
		{EntityKind: model.KindEvent, EntityID: 7, Locale: "de", Status: model.StatusFailed, LastError: &errMsg},
	}}
	h := handler.NewTranslationHandler(stub, notify.NewHub(), i18n.Locales)

	rec := doRequest(t, http.MethodGet, "/api/translations/event/7", "", h.Status, func(c echo.Context) {
		c.SetParamNames("kind", "id")
		c.SetParamValues("event", "7")
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, "completed", resp[0]["status"])
	require.Equal(t, "cooldown active", resp[1]["error"])
}

func TestTranslationHandlerStatusRejectsKind(t *testing.T) {
	h := handler.NewTranslationHandler(&translationServiceStub{}, notify.NewHub(), i18n.Locales)

	rec := doRequest(t, http.MethodGet, "/api/translations/page/7", "", h.Status, func(c echo.Context) {
		c.SetParamNames("kind", "id")
		c.SetParamValues("page", "7")
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandlerRetry(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		h := handler.NewTranslationHandler(&translationServiceStub{}, notify.NewHub(), i18n.Locales)

		rec := doRequest(t, http.MethodPost, "/api/translations/event/7/fr/retry", "", h.Retry, func(c echo.Context) {
			c.SetParamNames("kind", "id", "locale")
			c.SetParamValues("event", "7", "fr")
		})
		require.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("guard denial maps to 429", func(t *testing.T) {
		stub := &translationServiceStub{
			retryErr: fmt.Errorf("%w: %s", service.ErrTranslate, translate.ReasonRetryLimit),
		}
		h := handler.NewTranslationHandler(stub, notify.NewHub(), i18n.Locales)

		rec := doRequest(t, http.MethodPost, "/api/translations/event/7/fr/retry", "", h.Retry, func(c echo.Context) {
			c.SetParamNames("kind", "id", "locale")
			c.SetParamValues("event", "7", "fr")
		})
		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Contains(t, resp["error"], translate.ReasonRetryLimit)
	})

	t.Run("missing row maps to 404", func(t *testing.T) {
		stub := &translationServiceStub{retryErr: service.ErrNotFound}
		h := handler.NewTranslationHandler(stub, notify.NewHub(), i18n.Locales)

		rec := doRequest(t, http.MethodPost, "/api/translations/event/7/fr/retry", "", h.Retry, func(c echo.Context) {
			c.SetParamNames("kind", "id", "locale")
			c.SetParamValues("event", "7", "fr")
		})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
