package serverutils

import (
	"errors"

	"notes-be/internal/pkg/apperr"
	"notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors escaping a handler into the
// response envelope. Taxonomy errors keep their status; anything else is a
// 500 with a generic message, logged with the request id.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperr.As(err); ok {
			code := appErr.StatusCode()
			return ctx.Status(code).JSON(ErrorResponse(code, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error":      err.Error(),
			"path":       ctx.Path(),
			"method":     ctx.Method(),
			"request_id": RequestId(ctx),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
