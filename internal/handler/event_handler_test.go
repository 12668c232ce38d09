package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"gathr/backend/internal/handler"
	"gathr/backend/internal/model"
	"gathr/backend/internal/service"
)

type eventServiceStub struct {
	createErr    error
	getErr       error
	lastLocale   string
	lastCreated  model.Event
	view         service.EventView
	deletedID    int64
	deleteCalled bool
}

func (s *eventServiceStub) Create(ctx context.Context, event model.Event) (model.Event, error) {
	if s.createErr != nil {
		return model.Event{}, s.createErr
	}
	event.ID = 42
	s.lastCreated = event
	return event, nil
}

func (s *eventServiceStub) Get(ctx context.Context, id int64, viewerLocale string) (service.EventView, error) {
	if s.getErr != nil {
		return service.EventView{}, s.getErr
	}
	s.lastLocale = viewerLocale
	return s.view, nil
}

func (s *eventServiceStub) List(ctx context.Context, viewerLocale string) ([]service.EventView, error) {
	s.lastLocale = viewerLocale
	return []service.EventView{s.view}, nil
}

func (s *eventServiceStub) Delete(ctx context.Context, id int64) error {
	s.deleteCalled = true
	s.deletedID = id
	return nil
}

func newEventView() service.EventView {
	return service.EventView{
		Event: model.Event{
			ID:               7,
			OriginalLanguage: "en",
			Title:            "Planted",
			Description:      "desc",
			StartsAt:         time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		},
		Title:       "Planted",
		Description: "desc",
	}
}

func doRequest(t *testing.T, method, target, body string, h echo.HandlerFunc, setup func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	require.NoError(t, h(c))
	return rec
}

func TestEventHandlerCreate(t *testing.T) {
	stub := &eventServiceStub{}
	h := handler.NewEventHandler(stub)

	rec := doRequest(t, http.MethodPost, "/api/events",
		`{"language":"es","title":"Feria","description":"Comida","startsAt":"2026-10-01T18:00:00Z"}`,
		h.Create, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "es", stub.lastCreated.OriginalLanguage)
	require.Equal(t, "Feria", stub.lastCreated.Title)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "42", resp["id"])
}

func TestEventHandlerCreateRejectsBadTimestamp(t *testing.T) {
	h := handler.NewEventHandler(&eventServiceStub{})

	rec := doRequest(t, http.MethodPost, "/api/events",
		`{"title":"x","description":"y","startsAt":"tomorrow"}`,
		h.Create, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandlerCreateMapsServiceErrors(t *testing.T) {
	stub := &eventServiceStub{createErr: service.ErrInvalid}
	h := handler.NewEventHandler(stub)

	rec := doRequest(t, http.MethodPost, "/api/events",
		`{"title":"","description":"","startsAt":"2026-10-01T18:00:00Z"}`,
		h.Create, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandlerGetLocaleResolution(t *testing.T) {
	stub := &eventServiceStub{view: newEventView()}
	h := handler.NewEventHandler(stub)

	// Explicit query parameter wins.
	rec := doRequest(t, http.MethodGet, "/api/events/7?locale=fr", "", h.Get, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("7")
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "fr", stub.lastLocale)

	// Accept-Language is the fallback.
	rec = doRequest(t, http.MethodGet, "/api/events/7", "", h.Get, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("7")
		c.Request().Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pt", stub.lastLocale)

	// Nothing at all falls back to the default locale.
	rec = doRequest(t, http.MethodGet, "/api/events/7", "", h.Get, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("7")
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "en", stub.lastLocale)
}

func TestEventHandlerGetNotFound(t *testing.T) {
	stub := &eventServiceStub{getErr: service.ErrNotFound}
	h := handler.NewEventHandler(stub)

	rec := doRequest(t, http.MethodGet, "/api/events/99", "", h.Get, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("99")
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventHandlerDelete(t *testing.T) {
	stub := &eventServiceStub{}
	h := handler.NewEventHandler(stub)

	rec := doRequest(t, http.MethodDelete, "/api/events/5", "", h.Delete, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("5")
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, stub.deleteCalled)
	require.Equal(t, int64(5), stub.deletedID)

	rec = doRequest(t, http.MethodDelete, "/api/events/abc", "", h.Delete, func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues("abc")
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
