package api

import (
	"github.com/gofiber/fiber/v2"
)

// ShowWelcome is the public landing page. It also receives users rejected by
// a role check, so it renders their pending flash.
func (handler *Handler) ShowWelcome(c *fiber.Ctx) error {
	handler.ensureDependencies()
	status, err := handler.setupService.Status()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load data")
	}

	user := handler.optionalAuthenticatedUser(c)
	if user != nil {
		c.Locals(contextUserKey, user)
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"needs_setup": status.RequiresInitialSetup(),
			"admins":      status.Admins,
			"commercials": status.Commercials,
		})
	}

	homePath := ""
	if user != nil {
		homePath = postLoginRedirectPath(user)
	}
	return handler.render(c, "welcome", fiber.Map{
		"Title":       localizedPageTitle(currentMessages(c), "meta.title.welcome", "Prospecta"),
		"SetupStatus": status,
		"NeedsSetup":  status.RequiresInitialSetup(),
		"HomePath":    homePath,
	})
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	handler.setLanguageCookie(c, language)

	nextPath := sanitizeRedirectPath(c.Query("next"), "/")
	return redirectToPath(c, nextPath)
}
