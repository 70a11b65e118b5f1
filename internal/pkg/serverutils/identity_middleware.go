package serverutils

import (
	"ai-session-be/internal/pkg/identity"

	"github.com/gofiber/fiber/v2"
)

// IdentityMiddleware resolves the caller through the external identity API
// and stores the resolved user id in request locals. The resolved identity is
// the only trusted owner source; client-supplied user ids are never read.
func IdentityMiddleware(resolver *identity.Resolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Cookies(identity.SessionCookieName)

		userId, err := resolver.Resolve(ctx.Context(), token)
		if err != nil {
			// Reason already logged by the resolver; callers only see a
			// generic outcome.
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, "user identity required"))
		}

		ctx.Locals("user_id", userId)
		return ctx.Next()
	}
}
