package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"gathr/backend/internal/config"
	"gathr/backend/internal/db"
	"gathr/backend/internal/handler"
	transport "gathr/backend/internal/http"
	"gathr/backend/internal/logger"
	"gathr/backend/internal/notify"
	"gathr/backend/internal/repository"
	"gathr/backend/internal/scheduler"
	"gathr/backend/internal/service"
	"gathr/backend/internal/service/translate"
	"gathr/backend/internal/snowflake"
)

// @title Gathr API
// @version 1.0
// @description Multilingual community event board
// @BasePath /api
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	eventRepo := repository.NewEventRepository(dbConn)
	commentRepo := repository.NewCommentRepository(dbConn)
	translationRepo := repository.NewTranslationRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)

	guard := translate.NewGuard(translate.GuardConfig{
		MaxTextLength: cfg.MaxTextLength,
		MaxRetries:    cfg.MaxRetries,
		Cooldown:      cfg.Cooldown,
	})
	limiter := translate.NewRateLimiter(cfg.RateLimit)
	factory := translate.NewFactory(limiter, cfg.TranslateTimeout)
	hub := notify.NewHub()

	translationService := service.NewTranslationService(translationRepo, settingsRepo, eventRepo, commentRepo, guard, factory, hub, cfg.Locales)
	eventService := service.NewEventService(eventRepo, commentRepo, translationRepo, translationService, cfg.Locales)
	commentService := service.NewCommentService(commentRepo, eventRepo, translationRepo, translationService, cfg.Locales)
	settingsService := service.NewSettingsService(settingsRepo, limiter)

	eventHandler := handler.NewEventHandler(eventService)
	commentHandler := handler.NewCommentHandler(commentService)
	translationHandler := handler.NewTranslationHandler(translationService, hub, cfg.Locales)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	router := transport.NewRouter(eventHandler, commentHandler, translationHandler, settingsHandler)

	sched := scheduler.New(translationService, guard, cfg.SweepInterval, cfg.PendingTTL)
	sched.Start()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		sched.Stop()
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
