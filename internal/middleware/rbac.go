package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/httpx"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/models"
)

// RequireRole gates a route to one role of the closed role set.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := c.Locals("role")
		userRole, ok := v.(models.Role)
		if !ok || userRole != role {
			return httpx.Forbidden(c, "forbidden", "Insufficient permissions")
		}
		return c.Next()
	}
}
