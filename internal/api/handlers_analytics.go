package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/services"
)

func (handler *Handler) AverageSleepDuration(c *fiber.Ctx) error {
	average, err := handler.analytics.AverageSleepDuration(c.Params("userID"))
	if errors.Is(err, services.ErrNoSleepData) {
		return c.JSON(fiber.Map{"average_hours": nil})
	}
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(fiber.Map{"average_hours": average})
}

func (handler *Handler) SleepQualityOverview(c *fiber.Ctx) error {
	counts, err := handler.analytics.SleepQualityOverview(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(counts)
}

func (handler *Handler) DailyNutritionSummary(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return badRequest(c, "date query parameter must use YYYY-MM-DD")
	}
	summary, err := handler.analytics.DailyNutritionSummary(c.Params("userID"), date)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) NutritionSummaryRange(c *fiber.Ctx) error {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return badRequest(c, "from query parameter must use YYYY-MM-DD")
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return badRequest(c, "to query parameter must use YYYY-MM-DD")
	}
	totals, err := handler.analytics.NutritionSummaryRange(c.Params("userID"), from, to)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(totals)
}

func (handler *Handler) MonthlyWorkoutSummary(c *fiber.Ctx) error {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return badRequest(c, "month query parameter must be 1-12")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		return badRequest(c, "year query parameter must be a positive number")
	}
	summary, err := handler.analytics.MonthlyWorkoutSummary(c.Params("userID"), time.Month(month), year)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) WorkoutHistory(c *fiber.Ctx) error {
	workouts, err := handler.analytics.WorkoutHistory(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(workouts)
}

func (handler *Handler) MoodTrend(c *fiber.Ctx) error {
	counts, err := handler.analytics.MoodTrend(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(counts)
}

func (handler *Handler) GoalProgressReport(c *fiber.Ctx) error {
	report, err := handler.analytics.GoalProgressReport(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(report)
}
