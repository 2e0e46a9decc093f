package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/services"
)

type createMoodLogRequest struct {
	Date        string `json:"date"`
	Mood        string `json:"mood"`
	StressLevel *int   `json:"stress_level"`
	Notes       string `json:"notes"`
}

type updateMoodLogRequest struct {
	Date        *string `json:"date"`
	Mood        *string `json:"mood"`
	StressLevel *int    `json:"stress_level"`
	Notes       *string `json:"notes"`
}

func (handler *Handler) CreateMoodLog(c *fiber.Ctx) error {
	var request createMoodLogRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := parseOptionalDate(&request.Date)
	if err != nil {
		return badRequest(c, "date must use YYYY-MM-DD")
	}

	input := services.MoodLogInput{
		Mood:        request.Mood,
		StressLevel: request.StressLevel,
		Notes:       request.Notes,
	}
	if date != nil {
		input.Date = *date
	}

	entry, err := handler.records.CreateMoodLog(c.Params("userID"), input)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListMoodLogs(c *fiber.Ctx) error {
	entries, err := handler.records.ListMoodLogs(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) UpdateMoodLog(c *fiber.Ctx) error {
	var request updateMoodLogRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := parseOptionalDate(request.Date)
	if err != nil {
		return badRequest(c, "date must use YYYY-MM-DD")
	}

	err = handler.records.UpdateMoodLog(c.Params("entryID"), c.Params("userID"), services.MoodLogPatch{
		Date:        date,
		Mood:        request.Mood,
		StressLevel: request.StressLevel,
		Notes:       request.Notes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteMoodLog(c *fiber.Ctx) error {
	if err := handler.records.DeleteMoodLog(c.Params("entryID"), c.Params("userID")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
