package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"gathr/backend/internal/model"
	"gathr/backend/internal/service"
)

type CommentHandler struct {
	service service.CommentService
}

type createCommentRequest struct {
	Language string `json:"language"`
	Body     string `json:"body"`
}

type commentResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	Language    string `json:"language"`
	Body        string `json:"body"`
	Translated  bool   `json:"translated"`
	Translating bool   `json:"translating,omitempty"`
	Failed      bool   `json:"translationFailed,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/events/:id/comments", h.Create)
	g.GET("/events/:id/comments", h.ListByEvent)
	g.DELETE("/comments/:id", h.Delete)
}

// Create adds a comment to an event.
// @Summary Create a comment
// @Description Add a comment under an event and queue translations to all other locales
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param comment body createCommentRequest true "Comment creation request"
// @Success 201 {object} commentResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /events/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid event ID"})
	}
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	comment, err := h.service.Create(c.Request().Context(), model.Comment{
		EventID:          eventID,
		OriginalLanguage: req.Language,
		Body:             req.Body,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toCommentResponse(service.CommentView{
		Comment: comment,
		Body:    comment.Body,
	}))
}

// ListByEvent returns an event's comments rendered for the viewer locale.
// @Summary List comments
// @Description Get all comments under an event, translated to the requested locale when available
// @Tags comments
// @Produce json
// @Param id path int true "Event ID"
// @Param locale query string false "Viewer locale"
// @Success 200 {array} commentResponse
// @Failure 404 {object} errorResponse
// @Router /events/{id}/comments [get]
func (h *CommentHandler) ListByEvent(c echo.Context) error {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid event ID"})
	}
	views, err := h.service.ListByEvent(c.Request().Context(), eventID, viewerLocale(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	resp := make([]commentResponse, 0, len(views))
	for _, view := range views {
		resp = append(resp, toCommentResponse(view))
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete removes a comment and its derived translations.
// @Summary Delete a comment
// @Tags comments
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid comment ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toCommentResponse(view service.CommentView) commentResponse {
	comment := view.Comment
	return commentResponse{
		ID:          strconv.FormatInt(comment.ID, 10),
		EventID:     strconv.FormatInt(comment.EventID, 10),
		Language:    comment.OriginalLanguage,
		Body:        view.Body,
		Translated:  view.Translated,
		Translating: view.Pending,
		Failed:      view.Failed,
		CreatedAt:   comment.CreatedAt.UTC().Format(time.RFC3339),
	}
}
