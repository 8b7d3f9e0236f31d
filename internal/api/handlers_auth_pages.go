package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	redirected, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil {
		return err
	}
	if redirected {
		return nil
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":    localizedPageTitle(currentMessages(c), "meta.title.login", "Prospecta | Connexion"),
		"Flash":    flash,
		"Username": flash.LoginUsername,
	})
}
