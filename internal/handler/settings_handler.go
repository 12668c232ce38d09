package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gathr/backend/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

type translateSettingsRequest struct {
	Provider      string `json:"provider"`
	APIKey        string `json:"apiKey"`
	BaseURL       string `json:"baseUrl"`
	Model         string `json:"model"`
	RateLimit     int    `json:"rateLimit"`
	AutoTranslate bool   `json:"autoTranslate"`
}

type translateTestRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl"`
	Model    string `json:"model"`
}

type translateTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings/translate", h.GetTranslateSettings)
	g.PUT("/settings/translate", h.UpdateTranslateSettings)
	g.POST("/settings/translate/test", h.TestTranslator)
}

// GetTranslateSettings returns the translation provider configuration.
// @Summary Get translation settings
// @Description Get the provider configuration with a masked API key
// @Tags settings
// @Produce json
// @Success 200 {object} service.TranslateSettings
// @Router /settings/translate [get]
func (h *SettingsHandler) GetTranslateSettings(c echo.Context) error {
	settings, err := h.service.GetTranslateSettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateTranslateSettings updates the translation provider configuration.
// @Summary Update translation settings
// @Description Update the provider configuration. An empty or masked API key keeps the stored key.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body translateSettingsRequest true "Translation settings"
// @Success 200 {object} service.TranslateSettings
// @Failure 400 {object} errorResponse
// @Router /settings/translate [put]
func (h *SettingsHandler) UpdateTranslateSettings(c echo.Context) error {
	var req translateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	err := h.service.SetTranslateSettings(c.Request().Context(), &service.TranslateSettings{
		Provider:      req.Provider,
		APIKey:        req.APIKey,
		BaseURL:       req.BaseURL,
		Model:         req.Model,
		RateLimit:     req.RateLimit,
		AutoTranslate: req.AutoTranslate,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	settings, err := h.service.GetTranslateSettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// TestTranslator tests the provider connection.
// @Summary Test translation provider
// @Description Run a connectivity check against the configured provider
// @Tags settings
// @Accept json
// @Produce json
// @Param config body translateTestRequest true "Provider configuration to test"
// @Success 200 {object} translateTestResponse
// @Router /settings/translate/test [post]
func (h *SettingsHandler) TestTranslator(c echo.Context) error {
	var req translateTestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	message, err := h.service.TestTranslator(c.Request().Context(), req.Provider, req.APIKey, req.BaseURL, req.Model)
	if err != nil {
		return c.JSON(http.StatusOK, translateTestResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, translateTestResponse{Success: true, Message: message})
}
