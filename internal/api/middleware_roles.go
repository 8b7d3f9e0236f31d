package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles admits the authenticated user only when their role is listed.
// Rejected browser requests are sent back to the welcome page with a flash.
func (handler *Handler) RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			if acceptsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if _, permitted := allowed[user.Role]; permitted {
			return c.Next()
		}

		slog.Warn("access denied", "user_id", user.ID, "role", user.Role, "path", c.Path())
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusForbidden, "unauthorized access")
		}
		handler.setFlashCookie(c, FlashPayload{Error: "unauthorized access"})
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}
