package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/services"
)

type createGoalRequest struct {
	Goal        string  `json:"goal"`
	Description string  `json:"description"`
	TargetDate  *string `json:"target_date"`
	Completed   bool    `json:"completed"`
}

type updateGoalRequest struct {
	Goal        *string `json:"goal"`
	Description *string `json:"description"`
	TargetDate  *string `json:"target_date"`
	Completed   *bool   `json:"completed"`
}

func (handler *Handler) CreateFitnessGoal(c *fiber.Ctx) error {
	var request createGoalRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	targetDate, err := parseOptionalDate(request.TargetDate)
	if err != nil {
		return badRequest(c, "target_date must use YYYY-MM-DD")
	}

	goal, err := handler.records.CreateFitnessGoal(c.Params("userID"), services.FitnessGoalInput{
		Goal:        request.Goal,
		Description: request.Description,
		TargetDate:  targetDate,
		Completed:   request.Completed,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (handler *Handler) ListFitnessGoals(c *fiber.Ctx) error {
	goals, err := handler.records.ListFitnessGoals(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(goals)
}

func (handler *Handler) UpdateFitnessGoal(c *fiber.Ctx) error {
	var request updateGoalRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}
	targetDate, err := parseOptionalDate(request.TargetDate)
	if err != nil {
		return badRequest(c, "target_date must use YYYY-MM-DD")
	}

	err = handler.records.UpdateFitnessGoal(c.Params("goalID"), c.Params("userID"), services.FitnessGoalPatch{
		Goal:        request.Goal,
		Description: request.Description,
		TargetDate:  targetDate,
		Completed:   request.Completed,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteFitnessGoal(c *fiber.Ctx) error {
	if err := handler.records.DeleteFitnessGoal(c.Params("goalID"), c.Params("userID")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
