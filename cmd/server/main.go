package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/joho/godotenv"

	"github.com/careerpoint/admin-backend/internal/catalog"
	"github.com/careerpoint/admin-backend/internal/config"
	"github.com/careerpoint/admin-backend/internal/database"
	"github.com/careerpoint/admin-backend/internal/handlers"
	"github.com/careerpoint/admin-backend/internal/logging"
	"github.com/careerpoint/admin-backend/internal/middleware"
	"github.com/careerpoint/admin-backend/internal/modules"
	"github.com/careerpoint/admin-backend/internal/modules/ads"
	"github.com/careerpoint/admin-backend/internal/modules/payments"
	"github.com/careerpoint/admin-backend/internal/routes"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Feature modules
	moduleList := []modules.Module{
		ads.New(),
		payments.New(),
	}
	for _, m := range moduleList {
		if modelList := m.Models(); len(modelList) > 0 {
			if err := database.MigrateModels(modelList); err != nil {
				slog.Error("module migration failed", "module", m.ID(), "error", err)
				os.Exit(1)
			}
			slog.Info("module migrated", "module", m.ID(), "models", len(modelList))
		}
	}

	// Seed permission catalog, super_admin role, optional bootstrap admin
	if err := catalog.Seed(database.DB); err != nil {
		slog.Error("catalog seeding failed", "error", err)
		os.Exit(1)
	}
	if err := catalog.SeedBootstrapAdmin(database.DB, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword); err != nil {
		slog.Error("bootstrap admin seeding failed", "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Services
	authzService := services.NewAuthzService(database.DB)
	authService := services.NewAuthService(database.DB, cfg)
	moderationService := services.NewModerationService(database.DB, cfg.DefaultSuspensionDays)
	userService := services.NewUserService(database.DB)
	jobService := services.NewJobService(database.DB)

	// Expired suspensions are lifted lazily once a day
	startSuspensionSweep(userService, cleanupDone)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()
	roleHandler := handlers.NewRoleHandler(authzService)
	reportHandler := handlers.NewReportHandler(moderationService, userService, authzService)
	userHandler := handlers.NewUserHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	statsHandler := handlers.NewStatsHandler(database.DB)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, database.DB, authzService,
		authHandler, healthHandler, roleHandler, reportHandler,
		userHandler, jobHandler, statsHandler, moduleList)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func startSuspensionSweep(users *services.UserService, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cleared, err := users.ClearExpiredSuspensions()
				if err != nil {
					slog.Error("suspension sweep failed", "error", err)
				} else if cleared > 0 {
					slog.Info("expired suspensions lifted", "count", cleared)
				}
			case <-done:
				return
			}
		}
	}()
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
