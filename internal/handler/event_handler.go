package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"gathr/backend/internal/model"
	"gathr/backend/internal/service"
)

type EventHandler struct {
	service service.EventService
}

type createEventRequest struct {
	Language    string  `json:"language"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    *string `json:"location,omitempty"`
	StartsAt    string  `json:"startsAt"`
	EndsAt      *string `json:"endsAt,omitempty"`
}

type eventResponse struct {
	ID          string  `json:"id"`
	Language    string  `json:"language"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    *string `json:"location,omitempty"`
	StartsAt    string  `json:"startsAt"`
	EndsAt      *string `json:"endsAt,omitempty"`
	Translated  bool    `json:"translated"`
	Translating bool    `json:"translating,omitempty"`
	Failed      bool    `json:"translationFailed,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/events", h.Create)
	g.GET("/events", h.List)
	g.GET("/events/:id", h.Get)
	g.DELETE("/events/:id", h.Delete)
}

// Create creates a new event.
// @Summary Create an event
// @Description Create an event and queue translations to all other locales
// @Tags events
// @Accept json
// @Produce json
// @Param event body createEventRequest true "Event creation request"
// @Success 201 {object} eventResponse
// @Failure 400 {object} errorResponse
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid startsAt"})
	}
	var endsAt *time.Time
	if req.EndsAt != nil && *req.EndsAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid endsAt"})
		}
		endsAt = &parsed
	}

	event, err := h.service.Create(c.Request().Context(), model.Event{
		OriginalLanguage: req.Language,
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		StartsAt:         startsAt,
		EndsAt:           endsAt,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toEventResponse(service.EventView{
		Event:       event,
		Title:       event.Title,
		Description: event.Description,
	}))
}

// List returns all events rendered for the viewer locale.
// @Summary List events
// @Description Get all events, translated to the requested locale when available
// @Tags events
// @Produce json
// @Param locale query string false "Viewer locale"
// @Success 200 {array} eventResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context(), viewerLocale(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := make([]eventResponse, 0, len(views))
	for _, view := range views {
		resp = append(resp, toEventResponse(view))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one event rendered for the viewer locale.
// @Summary Get an event
// @Description Get one event, translated to the requested locale when available
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Param locale query string false "Viewer locale"
// @Success 200 {object} eventResponse
// @Failure 404 {object} errorResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid event ID"})
	}
	view, err := h.service.Get(c.Request().Context(), id, viewerLocale(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEventResponse(view))
}

// Delete removes an event, its comments and all derived translations.
// @Summary Delete an event
// @Tags events
// @Param id path int true "Event ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid event ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toEventResponse(view service.EventView) eventResponse {
	event := view.Event
	resp := eventResponse{
		ID:          strconv.FormatInt(event.ID, 10),
		Language:    event.OriginalLanguage,
		Title:       view.Title,
		Description: view.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt.UTC().Format(time.RFC3339),
		Translated:  view.Translated,
		Translating: view.Pending,
		Failed:      view.Failed,
		CreatedAt:   event.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   event.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if event.EndsAt != nil {
		formatted := event.EndsAt.UTC().Format(time.RFC3339)
		resp.EndsAt = &formatted
	}
	return resp
}
