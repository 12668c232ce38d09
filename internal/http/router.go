package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "gathr/backend/docs"
	"gathr/backend/internal/handler"
)

func NewRouter(
	eventHandler *handler.EventHandler,
	commentHandler *handler.CommentHandler,
	translationHandler *handler.TranslationHandler,
	settingsHandler *handler.SettingsHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	eventHandler.RegisterRoutes(api)
	commentHandler.RegisterRoutes(api)
	translationHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)

	return e
}
