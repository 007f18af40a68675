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

	pkgvalidator "github.com/johnquangdev/meeting-manager/pkg/validator"

	"github.com/johnquangdev/meeting-manager/internal/adapter/handler"
	"github.com/johnquangdev/meeting-manager/internal/adapter/repository"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-manager/internal/usecase/auth"
	"github.com/johnquangdev/meeting-manager/internal/usecase/dashboard"
	"github.com/johnquangdev/meeting-manager/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-manager/internal/usecase/task"
	pkgai "github.com/johnquangdev/meeting-manager/pkg/ai"
	"github.com/johnquangdev/meeting-manager/pkg/config"
	"github.com/johnquangdev/meeting-manager/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply SQL migrations only when explicitly enabled in config.
	// Production deployments should manage schema via scripts/migrate.go.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE and manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations on startup (development only) ...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping startup migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize snapshot cache store
	log.Println("📦 Initializing cache store...")
	var store cache.Store
	switch cfg.Cache.Driver {
	case "redis":
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Printf("✅ Cache store: redis (%s)", cfg.GetRedisAddr())
	default:
		store = cache.NewMemoryStore()
		log.Println("✅ Cache store: in-memory")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize summarizer
	log.Println("🤖 Initializing summarizer...")
	var summarizer pkgai.Summarizer
	if cfg.Groq.UseMock || cfg.Groq.APIKey == "" {
		summarizer = pkgai.NewMockSummarizer()
		log.Println("⚠️  Summarizer running in MOCK mode (no Groq key needed)")
	} else {
		summarizer = pkgai.NewGroqClient(&cfg.Groq)
		log.Printf("✅ Groq summarizer using model: %s", cfg.Groq.Model)
	}

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewService(userRepo, jwtManager)
	taskService := task.NewService(taskRepo)
	meetingService := meeting.NewService(meetingRepo, taskRepo, taskService, summarizer, store, cfg.Cache.DefaultTTL, logger)
	dashboardService := dashboard.NewService(meetingRepo, taskRepo, store, cfg.Cache.DefaultTTL)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, jwtManager, logger)
	dashboardHandler := handler.NewDashboard(dashboardService, logger)
	meetingHandler := handler.NewMeeting(meetingService, logger)
	taskHandler := handler.NewTask(taskService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, jwtManager, authHandler, dashboardHandler, meetingHandler, taskHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
