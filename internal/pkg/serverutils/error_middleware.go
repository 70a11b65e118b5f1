package serverutils

import (
	"errors"

	"ai-session-be/internal/pkg/logger"
	"ai-session-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates service errors into responses. NotFound is
// surfaced without a body so ownership mismatches stay indistinguishable from
// absence; anything unclassified becomes a generic 500 with the detail kept in
// the logs.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, service.ErrNotFound):
			// Deliberately empty body.
			return ctx.Status(fiber.StatusNotFound).Send(nil)
		case errors.Is(err, service.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("HTTP", "unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
