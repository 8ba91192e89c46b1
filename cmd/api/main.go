package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocab-coach/internal/config"
	"vocab-coach/internal/domain"
	"vocab-coach/internal/handler"
	"vocab-coach/internal/logger"
	"vocab-coach/internal/middleware"
	"vocab-coach/internal/player"
	"vocab-coach/internal/quiz"
	"vocab-coach/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Debug("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	questionRepository := repository.NewFileQuestionRepository(cfg.Data.QuestionsFile)
	sessionRepository := repository.NewFileSessionRepository(cfg.Data.CatalogFile, cfg.Data.AudioDir)

	// Both static documents load up front and concurrently. A failed fetch
	// aborts startup so that neither feature appears available with nothing
	// behind it.
	var questions []*domain.Question
	var catalog *domain.SessionCatalog

	group, groupCtx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		var err error
		questions, err = questionRepository.FetchAll(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		catalog, err = sessionRepository.FetchCatalog(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		appLogger.Fatal("Failed to load static data", zap.Error(err))
	}

	categories := quiz.BuildCategories(questions)
	appLogger.Info("Data ready",
		zap.Int("questions", len(questions)),
		zap.Int("categories", len(categories)),
		zap.Int("sessions", len(catalog.Sessions)),
	)

	pronouncer := player.NewFallbackChain(
		player.NewAudioFileStrategy(sessionRepository),
		player.NewSpeechSynthesisStrategy(cfg.Speech),
	)

	store := handler.NewClientStore(categories, sessionRepository, cfg.Player.SecondsPerWord)
	quizHandler := handler.NewQuizHandler(store, pronouncer)
	playerHandler := handler.NewPlayerHandler(store, catalog, cfg.Player.Rates)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger())

	handler.RegisterRoutes(app, quizHandler, playerHandler)

	app.Static("/assets/audio", cfg.Data.AudioDir)
	app.Static("/", cfg.Data.WebDir)

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		appLogger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			appLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		appLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
