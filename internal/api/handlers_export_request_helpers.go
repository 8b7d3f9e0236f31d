package api

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// setExportAttachmentHeaders also sends the RFC 5987 form of filename so
// accented usernames survive the download.
func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", filename, url.PathEscape(filename)))
}
