package api

import (
	"errors"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is installed as the fiber error handler. Server errors are
// logged, reported on the request's Sentry hub and rendered as the error page.
func (handler *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	if status == fiber.StatusNotFound {
		return handler.NotFound(c)
	}

	if status >= fiber.StatusInternalServerError {
		message = "internal server error"
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"error", err,
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}

	if acceptsJSON(c) {
		return apiError(c, status, message)
	}

	c.Status(status)
	return handler.render(c, "error", fiber.Map{
		"Title":   localizedPageTitle(currentMessages(c), "meta.title.error", "Prospecta | Erreur"),
		"Status":  status,
		"Message": message,
	})
}
