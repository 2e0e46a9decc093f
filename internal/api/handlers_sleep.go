package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/services"
)

type createSleepRecordRequest struct {
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Quality        string   `json:"quality"`
	DeepSleepHours *float64 `json:"deep_sleep_hours"`
	Notes          string   `json:"notes"`
}

type updateSleepRecordRequest struct {
	StartTime      *string  `json:"start_time"`
	EndTime        *string  `json:"end_time"`
	Quality        *string  `json:"quality"`
	DeepSleepHours *float64 `json:"deep_sleep_hours"`
	Notes          *string  `json:"notes"`
}

func (handler *Handler) CreateSleepRecord(c *fiber.Ctx) error {
	var request createSleepRecordRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	startTime, err := parseOptionalDateTime(&request.StartTime)
	if err != nil {
		return badRequest(c, "start_time must use RFC 3339")
	}
	endTime, err := parseOptionalDateTime(&request.EndTime)
	if err != nil {
		return badRequest(c, "end_time must use RFC 3339")
	}

	input := services.SleepRecordInput{
		Quality:        request.Quality,
		DeepSleepHours: request.DeepSleepHours,
		Notes:          request.Notes,
	}
	if startTime != nil {
		input.StartTime = *startTime
	}
	if endTime != nil {
		input.EndTime = *endTime
	}

	record, err := handler.records.CreateSleepRecord(c.Params("userID"), input)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) ListSleepRecords(c *fiber.Ctx) error {
	records, err := handler.records.ListSleepRecords(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(records)
}

func (handler *Handler) UpdateSleepRecord(c *fiber.Ctx) error {
	var request updateSleepRecordRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	startTime, err := parseOptionalDateTime(request.StartTime)
	if err != nil {
		return badRequest(c, "start_time must use RFC 3339")
	}
	endTime, err := parseOptionalDateTime(request.EndTime)
	if err != nil {
		return badRequest(c, "end_time must use RFC 3339")
	}

	err = handler.records.UpdateSleepRecord(c.Params("recordID"), c.Params("userID"), services.SleepRecordPatch{
		StartTime:      startTime,
		EndTime:        endTime,
		Quality:        request.Quality,
		DeepSleepHours: request.DeepSleepHours,
		Notes:          request.Notes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteSleepRecord(c *fiber.Ctx) error {
	if err := handler.records.DeleteSleepRecord(c.Params("recordID"), c.Params("userID")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
