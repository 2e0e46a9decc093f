package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/services"
)

type createUserRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Age      *int     `json:"age"`
	Gender   string   `json:"gender"`
	WeightKg *float64 `json:"weight_kg"`
	HeightCm *float64 `json:"height_cm"`
	Bio      string   `json:"bio"`
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	var request createUserRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := handler.records.CreateUser(services.UserInput{
		Name:     request.Name,
		Email:    request.Email,
		Age:      request.Age,
		Gender:   request.Gender,
		WeightKg: request.WeightKg,
		HeightCm: request.HeightCm,
		Bio:      request.Bio,
	})
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	user, err := handler.records.GetUser(c.Params("userID"))
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(user)
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.records.ListUsers()
	if err != nil {
		return handler.serviceError(c, err)
	}
	return c.JSON(users)
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := handler.records.DeleteUser(c.Params("userID")); err != nil {
		return handler.serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
