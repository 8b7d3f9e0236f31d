package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
)

const (
	authCookieName     = "prospecta_auth"
	languageCookieName = "prospecta_lang"
	flashCookieName    = "prospecta_flash"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
