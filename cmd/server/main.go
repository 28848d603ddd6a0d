package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"book-summarizer/backend/internal/agent"
	"book-summarizer/backend/internal/config"
	"book-summarizer/backend/internal/handler"
	"book-summarizer/backend/internal/logging"
	"book-summarizer/backend/internal/middleware"
	"book-summarizer/backend/internal/site"
	"book-summarizer/backend/internal/view"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	logger, err := logging.New(logging.Options{
		Production: cfg.Production(),
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
	})
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	logger.Info("starting book summarizer", zap.String("env", cfg.Env), zap.String("model", cfg.Model))

	llm, err := agent.NewGeminiLLMClient(context.Background(), agent.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.Model,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		logger.Fatal("failed to create Gemini client", zap.Error(err))
	}
	if !llm.Configured() {
		logger.Warn("GEMINI_API_KEY is not set; summary requests will fail until it is configured")
	}

	summarizer := agent.NewSummarizer(llm, agent.NewInMemoryTranscriptRepository(cfg.ChatTTL), agent.Options{
		Timeout: cfg.GenerationTimeout,
		Logger:  logger,
	})

	content := site.Default()
	if cfg.SiteContentPath != "" {
		if content, err = site.Load(cfg.SiteContentPath); err != nil {
			logger.Fatal("failed to load site content", zap.Error(err))
		}
	}

	tmpl, err := view.New()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// keeps %2F inside a single :title segment
	r.UseRawPath = true
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.Logger(logger), middleware.Recovery(logger))
	r.Use(middleware.SecurityHeaders())

	h := handler.New(summarizer, content, logger)

	// Health check endpoints (outside /api group)
	h.RegisterHealth(r)
	h.RegisterPages(r)

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	h.RegisterAPI(api)

	r.NoRoute(h.HandleNoRoute)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server ready", zap.String("addr", srv.Addr), zap.Strings("allowed_origins", cfg.AllowedOrigins))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
