package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/services"
)

type createNutritionLogRequest struct {
	Date          string   `json:"date"`
	MealType      string   `json:"meal_type"`
	Calories      *int     `json:"calories"`
	ProteinsGrams *float64 `json:"proteins_grams"`
	CarbsGrams    *float64 `json:"carbs_grams"`
	FatsGrams     *float64 `json:"fats_grams"`
	Notes         string   `json:"notes"`
}

type updateNutritionLogRequest struct {
	Date          *string  `json:"date"`
	MealType      *string  `json:"meal_type"`
	Calories      *int     `json:"calories"`
	ProteinsGrams *float64 `json:"proteins_grams"`
	CarbsGrams    *float64 `json:"carbs_grams"`
	FatsGrams     *float64 `json:"fats_grams"`
	Notes         *string  `json:"notes"`
}

func (handler *Handler) CreateNutritionLog(c *fiber.Ctx) error {
	var request createNutritionLogRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := parseOptionalDate(&request.Date)
	if err != nil {
		return badRequest(c, "date must use YYYY-MM-DD")
	}

	input := services.NutritionLogInput{
		MealType:      request.MealType,
		Calories:      request.Calories,
		ProteinsGrams: request.ProteinsGrams,
		CarbsGrams:    request.CarbsGrams,
		FatsGrams:     request.FatsGrams,
		Notes:         request.Notes,
	}
	if date != nil {
		input.Date = *date
	}

	entry, err := handler.records.CreateNutritionLog(c.Params("userID"), input)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListNutritionLogs(c *fiber.Ctx) error {
	entries, err := handler.records.ListNutritionLogs(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) UpdateNutritionLog(c *fiber.Ctx) error {
	var request updateNutritionLogRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := parseOptionalDate(request.Date)
	if err != nil {
		return badRequest(c, "date must use YYYY-MM-DD")
	}

	err = handler.records.UpdateNutritionLog(c.Params("entryID"), c.Params("userID"), services.NutritionLogPatch{
		Date:          date,
		MealType:      request.MealType,
		Calories:      request.Calories,
		ProteinsGrams: request.ProteinsGrams,
		CarbsGrams:    request.CarbsGrams,
		FatsGrams:     request.FatsGrams,
		Notes:         request.Notes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteNutritionLog(c *fiber.Ctx) error {
	if err := handler.records.DeleteNutritionLog(c.Params("entryID"), c.Params("userID")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
