package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Anishkumar-1804/resume-analyzer/internal/config"
	"github.com/Anishkumar-1804/resume-analyzer/internal/handlers"
	"github.com/Anishkumar-1804/resume-analyzer/internal/services"
	applogger "github.com/Anishkumar-1804/resume-analyzer/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	zlog, err := applogger.NewSugared(cfg.Server.Env)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	detector := services.NewFileTypeDetector()
	extractor := services.NewExtractorService()
	promptBuilder := services.NewPromptBuilder()
	zlog.Info("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, zlog)
	if err != nil {
		zlog.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	zlog.Info("✅ Gemini AI initialized successfully")

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		storageService,
		detector,
		extractor,
		promptBuilder,
		geminiService,
		zlog,
	)
	zlog.Info("✅ Analyzer service initialized")

	// Initialize handlers
	pageHandler := handlers.NewPageHandler()
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, cfg.Storage.MaxFileSize)
	reportHandler := handlers.NewReportHandler()
	zlog.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Genius",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/report", reportHandler.HandleDownload)

	app.Get("/", pageHandler.HandleIndex)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zlog.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		zlog.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
