package serverutils

import (
	"strings"

	"notes-be/internal/pkg/apperr"
	"notes-be/internal/pkg/security"

	"github.com/gofiber/fiber/v2"
)

const LocalsUserId = "user_id"

// JwtMiddleware resolves the caller identity from the bearer token and
// stores the numeric user id in ctx.Locals. Routes behind it can assume an
// authenticated caller.
func JwtMiddleware(tokens *security.TokenManager) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return apperr.InvalidToken("Missing token")
		}

		userId, err := tokens.Decode(authHeader[7:])
		if err != nil {
			return err
		}

		ctx.Locals(LocalsUserId, userId)
		return ctx.Next()
	}
}

// CallerId reads the user id resolved by JwtMiddleware.
func CallerId(ctx *fiber.Ctx) uint {
	userId, _ := ctx.Locals(LocalsUserId).(uint)
	return userId
}
