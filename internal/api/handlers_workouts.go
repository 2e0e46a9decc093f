package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/services"
)

type createWorkoutRequest struct {
	Date            string   `json:"date"`
	DurationMinutes *float64 `json:"duration_minutes"`
	Type            string   `json:"type"`
	Intensity       string   `json:"intensity"`
	CaloriesBurned  *float64 `json:"calories_burned"`
	Notes           string   `json:"notes"`
}

type updateWorkoutRequest struct {
	Date            *string  `json:"date"`
	DurationMinutes *float64 `json:"duration_minutes"`
	Type            *string  `json:"type"`
	Intensity       *string  `json:"intensity"`
	CaloriesBurned  *float64 `json:"calories_burned"`
	Notes           *string  `json:"notes"`
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	var request createWorkoutRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := parseOptionalDate(&request.Date)
	if err != nil {
		return badRequest(c, "date must use YYYY-MM-DD")
	}

	input := services.WorkoutInput{
		DurationMinutes: request.DurationMinutes,
		Type:            request.Type,
		Intensity:       request.Intensity,
		CaloriesBurned:  request.CaloriesBurned,
		Notes:           request.Notes,
	}
	if date != nil {
		input.Date = *date
	}

	workout, err := handler.records.CreateWorkout(c.Params("userID"), input)
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	workouts, err := handler.records.ListWorkouts(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(workouts)
}

func (handler *Handler) UpdateWorkout(c *fiber.Ctx) error {
	var request updateWorkoutRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := parseOptionalDate(request.Date)
	if err != nil {
		return badRequest(c, "date must use YYYY-MM-DD")
	}

	err = handler.records.UpdateWorkout(c.Params("workoutID"), c.Params("userID"), services.WorkoutPatch{
		Date:            date,
		DurationMinutes: request.DurationMinutes,
		Type:            request.Type,
		Intensity:       request.Intensity,
		CaloriesBurned:  request.CaloriesBurned,
		Notes:           request.Notes,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	if err := handler.records.DeleteWorkout(c.Params("workoutID"), c.Params("userID")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
