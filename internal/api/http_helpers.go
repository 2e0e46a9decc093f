package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vitalog/vitalog/internal/services"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func (handler *Handler) serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case services.IsValidation(err):
		status = fiber.StatusBadRequest
	case services.IsNotFound(err):
		status = fiber.StatusNotFound
	case services.IsConflict(err):
		status = fiber.StatusConflict
	case services.IsInvalidState(err):
		handler.logger.Error("stored data violates domain", zap.String("path", c.Path()), zap.Error(err))
	default:
		handler.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func parseDateQuery(c *fiber.Ctx, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalDateTime(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
