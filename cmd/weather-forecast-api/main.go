package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"

	_ "github.com/i474232898/weather-forecast-api/docs"
	httpapi "github.com/i474232898/weather-forecast-api/internal/api/http"
	"github.com/i474232898/weather-forecast-api/internal/collector"
	"github.com/i474232898/weather-forecast-api/internal/config"
	"github.com/i474232898/weather-forecast-api/internal/database"
	"github.com/i474232898/weather-forecast-api/internal/forecast"
	"github.com/i474232898/weather-forecast-api/internal/logging"
	"github.com/i474232898/weather-forecast-api/internal/scheduler"
)

const (
	appName = "weather-forecast-api"
	version = "1.0.0"
)

//	@title			Weather Forecast API
//	@version		1.0.0
//	@description	REST CRUD API exposing the weather_forecast table, plus info and health probes.
//	@BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.AppEnv, cfg.LogLevel, appName)
	slog.SetDefault(log)

	db, err := database.Open(database.Config{
		Path:            cfg.DBPath,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	repo := forecast.NewRepository(db)
	service := forecast.NewService(repo)

	// Background collection is optional; the API works as a pure CRUD layer
	// without it.
	if cfg.CollectorEnabled() {
		httpClient := &http.Client{Timeout: 30 * time.Second}
		omClient := collector.NewOpenMeteoClient(httpClient)
		coll := collector.New(log, omClient, service, cfg.CollectorLocation, cfg.CollectorDays)

		sched := scheduler.New(log, coll, cfg.CollectorInterval)
		if err := sched.Start(); err != nil {
			log.Error("failed to start scheduler", "error", err)
			os.Exit(1)
		}
		defer sched.Stop()
	} else {
		log.Info("collector disabled, no location configured")
	}

	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Interactive API documentation and the static test page.
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/", "./static")

	handler := httpapi.NewHandler(service, appName, version)
	httpapi.RegisterRoutes(app, handler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()
	log.Info("listening", "port", cfg.Port)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
}
