package api

import (
	"bytes"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		slog.Error("render template", "template", name, "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

// renderOrJSON serves the JSON payload to API clients and the page otherwise.
func (handler *Handler) renderOrJSON(c *fiber.Ctx, name string, payload any, data fiber.Map) error {
	if acceptsJSON(c) {
		return c.JSON(payload)
	}
	return handler.render(c, name, data)
}
