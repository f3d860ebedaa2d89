package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "hiring-backend/lib/utils/auth-utils"
	"hiring-backend/models"
	apimodels "hiring-backend/models/api"
)

// RequireRoles rejects the request unless the token carries one of the
// given roles. Admins pass every check.
func RequireRoles(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := authutils.GetUserRole(ctx)
		if role == models.UserRoleAdmin {
			return ctx.Next()
		}
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not permitted for your role"))
	}
}

func AdminOnly() fiber.Handler {
	return RequireRoles(models.UserRoleAdmin)
}
