package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/services"
)

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input", "")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) || errors.Is(err, services.ErrUsernameInvalid) {
			slog.Info("login rejected", "username", services.NormalizeUsername(credentials.Username))
			return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials", credentials.Username)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	slog.Info("login succeeded", "user_id", user.ID, "role", user.Role)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"ok":       true,
			"role":     user.Role,
			"redirect": postLoginRedirectPath(&user),
		})
	}
	return redirectToPath(c, postLoginRedirectPath(&user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if isHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusOK)
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string, username string) error {
	if acceptsJSON(c) || isHTMX(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{Error: message, LoginUsername: services.NormalizeUsername(username)})
	return c.Redirect("/login", fiber.StatusSeeOther)
}
