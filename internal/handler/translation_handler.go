package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"gathr/backend/internal/i18n"
	"gathr/backend/internal/model"
	"gathr/backend/internal/notify"
	"gathr/backend/internal/service"
)

type TranslationHandler struct {
	service service.TranslationService
	hub     *notify.Hub
	locales []string
}

type translationResponse struct {
	EntityKind string            `json:"entityKind"`
	EntityID   string            `json:"entityId"`
	Locale     string            `json:"locale"`
	Status     string            `json:"status"`
	Fields     map[string]string `json:"fields,omitempty"`
	Error      string            `json:"error,omitempty"`
	UpdatedAt  string            `json:"updatedAt"`
}

type localeResponse struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
	RTL  bool   `json:"rtl,omitempty"`
}

func NewTranslationHandler(service service.TranslationService, hub *notify.Hub, locales []string) *TranslationHandler {
	return &TranslationHandler{service: service, hub: hub, locales: locales}
}

func (h *TranslationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/locales", h.Locales)
	g.GET("/translations/:kind/:id", h.Status)
	g.POST("/translations/:kind/:id/:locale/retry", h.Retry)
	g.GET("/translations/:kind/:id/stream", h.Stream)
}

// Locales lists the supported locales.
// @Summary List locales
// @Description Get the locale set content can be translated to
// @Tags translations
// @Produce json
// @Success 200 {array} localeResponse
// @Router /locales [get]
func (h *TranslationHandler) Locales(c echo.Context) error {
	resp := make([]localeResponse, 0, len(h.locales))
	for _, tag := range h.locales {
		resp = append(resp, localeResponse{Tag: tag, Name: i18n.Name(tag), RTL: i18n.IsRTL(tag)})
	}
	return c.JSON(http.StatusOK, resp)
}

// Status lists all translation rows for one entity.
// @Summary Translation status
// @Description Get the per-locale translation state of an event or comment
// @Tags translations
// @Produce json
// @Param kind path string true "Entity kind" Enums(event, comment)
// @Param id path int true "Entity ID"
// @Success 200 {array} translationResponse
// @Failure 400 {object} errorResponse
// @Router /translations/{kind}/{id} [get]
func (h *TranslationHandler) Status(c echo.Context) error {
	kind := c.Param("kind")
	if !isValidKind(kind) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entity kind"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entity ID"})
	}

	rows, err := h.service.Status(c.Request().Context(), kind, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := make([]translationResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, toTranslationResponse(row))
	}
	return c.JSON(http.StatusOK, resp)
}

// Retry re-runs a failed translation.
// @Summary Retry a translation
// @Description Re-run a failed translation for one entity and locale
// @Tags translations
// @Produce json
// @Param kind path string true "Entity kind" Enums(event, comment)
// @Param id path int true "Entity ID"
// @Param locale path string true "Target locale"
// @Success 202 {object} statusResponse
// @Failure 404 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /translations/{kind}/{id}/{locale}/retry [post]
func (h *TranslationHandler) Retry(c echo.Context) error {
	kind := c.Param("kind")
	if !isValidKind(kind) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entity kind"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entity ID"})
	}

	if err := h.service.Retry(c.Request().Context(), kind, id, c.Param("locale")); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, statusResponse{Status: "accepted"})
}

// Stream pushes translation updates for one entity over SSE.
// @Summary Stream translation updates
// @Description Server-sent events with per-locale translation state changes for one entity
// @Tags translations
// @Produce text/event-stream
// @Param kind path string true "Entity kind" Enums(event, comment)
// @Param id path int true "Entity ID"
// @Success 200
// @Failure 400 {object} errorResponse
// @Router /translations/{kind}/{id}/stream [get]
func (h *TranslationHandler) Stream(c echo.Context) error {
	kind := c.Param("kind")
	if !isValidKind(kind) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entity kind"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid entity ID"})
	}

	sub := h.hub.Subscribe(kind, id)
	defer sub.Close()

	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case update, ok := <-sub.C:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(update)
			if err != nil {
				c.Logger().Errorf("marshal update: %v", err)
				continue
			}
			if _, err := fmt.Fprintf(c.Response(), "event: translation\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			c.Response().Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Response(), ": ping\n\n"); err != nil {
				return nil
			}
			c.Response().Flush()
		case <-ctx.Done():
			return nil
		}
	}
}

func toTranslationResponse(row model.Translation) translationResponse {
	resp := translationResponse{
		EntityKind: row.EntityKind,
		EntityID:   strconv.FormatInt(row.EntityID, 10),
		Locale:     row.Locale,
		Status:     string(row.Status),
		Fields:     row.Fields,
		UpdatedAt:  row.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if row.LastError != nil {
		resp.Error = *row.LastError
	}
	return resp
}
