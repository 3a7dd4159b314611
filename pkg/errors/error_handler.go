package errors

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// HandleError renders any error as the uniform failure envelope
// {statusCode, error, message}. Unrecognized errors become 500s.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ae *APIError
	if !errors.As(err, &ae) {
		slog.Error("unexpected error", "path", c.Path(), "err", err)
		ae = Internal(err)
	}

	if ae.Err != nil {
		slog.Error("request failed", "path", c.Path(), "code", ae.Code, "err", ae.Err)
	}

	status := statusFor(ae.Code)
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"error":      ae.Code,
		"message":    ae.Message,
	})
}

func statusFor(code string) int {
	switch code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	case CodeUpstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
