package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"

	_ "github.com/johnquangdev/meeting-summarizer/docs"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/external/mailer"
	httpmw "github.com/johnquangdev/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/summary"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// @title           Meeting Notes Summarizer API
// @version         1.0
// @description     Summarizes meeting transcripts, stores editable summaries and shares them by email
// @BasePath        /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(httpmw.RequestLogger(logger, "/health"))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger.Info("🔧 Initializing dependencies...")

	// Database
	db, err := database.NewPostgresDB(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db, logger)

	// Production deployments manage schema with cmd/migrate
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			logger.Fatal("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or run cmd/migrate.")
		}
		if err := database.AutoMigrate(db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	} else {
		logger.Info("🔄 Skipping migrations; run cmd/migrate to apply schema changes")
	}

	// Summary cache
	var summaryCache cache.SummaryCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		summaryCache = cache.NewRedisSummaryCache(redisClient, cfg.Redis.CacheTTL)
	} else {
		store := cache.NewMemoryStore(time.Minute)
		defer store.Close()
		summaryCache = cache.NewMemorySummaryCache(store, cfg.Redis.CacheTTL)
		logger.Info("📦 Redis disabled, caching summaries in memory")
	}

	// Email archive
	var (
		archiver mailer.Archiver
		opts     = []summary.Option{summary.WithCache(summaryCache)}
	)
	if cfg.Storage.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		archiver = minioClient
		opts = append(opts, summary.WithArchive(minioClient))
		logger.Info("🗄️  Archiving sent emails", zap.String("bucket", cfg.Storage.BucketName))
	}

	// Summarizer
	var remote aiuse.Completer
	if cfg.AI.Enabled() {
		remote = pkgai.NewCompletionClient(&cfg.AI)
		logger.Info("🤖 Using remote model", zap.String("model", cfg.AI.Model))
	} else {
		logger.Warn("⚠️  No AI API key configured, using the heuristic summarizer")
	}
	summarizer := aiuse.NewSummarizer(remote, logger)

	if !cfg.Mail.Configured() {
		logger.Warn("⚠️  SMTP is not configured; sending email will fail")
	}
	sender := mailer.NewSender(mailer.NewSMTPTransport(cfg.Mail), archiver, cfg.Mail.Sender(), logger)

	summaryService := summary.NewSummaryService(
		repository.NewSummaryRepository(db),
		summarizer,
		sender,
		logger,
		opts...,
	)

	router := handler.NewRouter(
		cfg,
		handler.NewSummaryHandler(summaryService, logger),
		handler.NewEmailHandler(summaryService, logger),
		summaryService.RemoteEnabled(),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
