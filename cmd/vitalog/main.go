package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vitalog/vitalog/internal/api"
	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/db"
	"github.com/vitalog/vitalog/internal/seed"
	"github.com/vitalog/vitalog/internal/services"
	"go.uber.org/zap"
)

func main() {
	seedUsers := flag.Int("seed", 0, "create this many sample users with logs, then exit")
	flag.Parse()

	cfg := config.Load()

	appLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	time.Local = mustLoadLocation(cfg.Timezone, appLogger)

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		appLogger.Fatal("database init failed", zap.Error(err))
	}

	if *seedUsers > 0 {
		repos := db.NewRepositories(database)
		records := services.NewRecordService(
			repos.Users,
			repos.FitnessGoals,
			repos.Workouts,
			repos.NutritionLogs,
			repos.SleepRecords,
			repos.MoodLogs,
		)
		if err := seed.Generate(records, seed.Options{Users: *seedUsers}); err != nil {
			appLogger.Fatal("seeding failed", zap.Error(err))
		}
		appLogger.Info("sample data created", zap.Int("users", *seedUsers), zap.String("db", cfg.DBPath))
		return
	}

	handler := api.NewHandler(database, appLogger)

	app := fiber.New(fiber.Config{
		AppName:               "Vitalog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(api.MetricsMiddleware())

	api.RegisterMetrics()
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	appLogger.Info("vitalog listening",
		zap.String("addr", cfg.Addr),
		zap.String("db", cfg.DBPath),
		zap.String("tz", cfg.Timezone),
	)
	if err := app.Listen(cfg.Addr); err != nil {
		appLogger.Fatal("server exited", zap.Error(err))
	}
}

func mustLoadLocation(name string, appLogger *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		appLogger.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}
