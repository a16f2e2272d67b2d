package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localsRequestId = "request_id"

// RequestIdMiddleware assigns every request a correlation id, reusing one
// supplied by the client when present.
func RequestIdMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := ctx.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		ctx.Locals(localsRequestId, requestId)
		ctx.Set("X-Request-Id", requestId)
		return ctx.Next()
	}
}

func RequestId(ctx *fiber.Ctx) string {
	requestId, _ := ctx.Locals(localsRequestId).(string)
	return requestId
}
