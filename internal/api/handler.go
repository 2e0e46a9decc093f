package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/db"
	"github.com/vitalog/vitalog/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	records   *services.RecordService
	analytics *services.AnalyticsService
	logger    *zap.Logger
}

func NewHandler(database *gorm.DB, logger *zap.Logger) *Handler {
	repos := db.NewRepositories(database)
	return &Handler{
		records: services.NewRecordService(
			repos.Users,
			repos.FitnessGoals,
			repos.Workouts,
			repos.NutritionLogs,
			repos.SleepRecords,
			repos.MoodLogs,
		),
		analytics: services.NewAnalyticsService(
			repos.Users,
			repos.FitnessGoals,
			repos.Workouts,
			repos.NutritionLogs,
			repos.SleepRecords,
			repos.MoodLogs,
		),
		logger: logger,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
