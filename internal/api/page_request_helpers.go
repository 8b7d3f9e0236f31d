package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
)

func (handler *Handler) redirectAuthenticatedUserIfPresent(c *fiber.Ctx) (bool, error) {
	if user, err := handler.authenticateRequest(c); err == nil {
		if redirectErr := c.Redirect(postLoginRedirectPath(user), fiber.StatusSeeOther); redirectErr != nil {
			return false, redirectErr
		}
		return true, nil
	}
	return false, nil
}

func (handler *Handler) optionalAuthenticatedUser(c *fiber.Ctx) *models.User {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return nil
	}
	return user
}

// mustCurrentUser is used behind AuthRequired, which always stores the user.
func mustCurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := currentUser(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return user, nil
}

func (handler *Handler) today() time.Time {
	now := time.Now().In(handler.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
