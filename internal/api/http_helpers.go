package api

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func redirectToPath(c *fiber.Ctx, path string) error {
	if isHTMX(c) {
		c.Set("HX-Redirect", path)
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondWithFlashError answers JSON clients with status and message, and
// everyone else with a flash and a redirect to path.
func (handler *Handler) respondWithFlashError(c *fiber.Ctx, status int, message string, path string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{Error: message})
	return redirectToPath(c, path)
}

// respondWithFlashSuccess mirrors respondWithFlashError for completed writes.
func (handler *Handler) respondWithFlashSuccess(c *fiber.Ctx, status int, payload fiber.Map, messageKey string, path string) error {
	if acceptsJSON(c) {
		return c.Status(status).JSON(payload)
	}
	handler.setFlashCookie(c, FlashPayload{Success: messageKey})
	return redirectToPath(c, path)
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func isHTMX(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Get("HX-Request"), "true")
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func localizedPageTitle(messages map[string]string, key string, fallback string) string {
	title := translateMessage(messages, key)
	if title == key || strings.TrimSpace(title) == "" {
		return fallback
	}
	return title
}

func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return fallback
	}
	if strings.HasPrefix(candidate, "//") || !strings.HasPrefix(candidate, "/") {
		return fallback
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.IsAbs() {
		return fallback
	}
	return candidate
}

// pathParam returns the URL-decoded route parameter. Usernames may carry
// spaces and accents.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(decoded)
}

func commercialPath(username string) string {
	return "/commercials/" + url.PathEscape(username)
}
