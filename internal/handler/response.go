package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"gathr/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// writeServiceError maps service errors onto HTTP status codes. Guard
// denials carry their reason through to the client body; everything
// unexpected is logged and hidden behind a 500.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrTranslate):
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
