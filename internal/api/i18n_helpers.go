package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
)

var errorKeys = map[string]string{
	"invalid input":                 "error.invalid_input",
	"invalid credentials":           "auth.error.invalid_credentials",
	"unauthorized access":           "error.unauthorized",
	"commercial not found":          "error.commercial_not_found",
	"unknown project":               "error.unknown_project",
	"unknown brand":                 "error.unknown_brand",
	"invalid month":                 "error.invalid_month",
	"date required":                 "sales.error.date_required",
	"prospection date required":     "prospection.error.date_required",
	"planning week start required":  "planning.error.week_start_required",
	"planning not found":            "error.planning_not_found",
	"product not found":             "error.product_not_found",
	"invalid date filter":           "admin.error.invalid_date_filter",
	"failed to build export":        "export.error.failed",
	"failed to load data":           "error.load_failed",
	"failed to save":                "error.save_failed",
	"failed to create session":      "error.save_failed",
	"internal server error":         "error.internal",
	"user is not a commercial":      "error.not_commercial",
	"prospection field required":    "prospection.error.field_required",
	"prospection field too long":    "prospection.error.field_too_long",
	"unknown planning structure":    "planning.error.unknown_structure",
	"invalid date":                  "error.invalid_date",
	"invalid quantity":              "sales.error.invalid_quantity",
	"invalid price":                 "sales.error.invalid_price",
	"negative price":                "sales.error.negative_price",
	"invalid stock value":           "sales.error.invalid_stock",
}

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

// errorTranslationKey maps an error text to its message key. Wrapped errors
// such as "Biafine: invalid quantity" resolve through the longest known text
// they contain.
func errorTranslationKey(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if key, ok := errorKeys[normalized]; ok {
		return key
	}

	matched := ""
	for text := range errorKeys {
		if len(text) > len(matched) && strings.Contains(normalized, text) {
			matched = text
		}
	}
	if matched == "" {
		return ""
	}
	return errorKeys[matched]
}

func roleTranslationKey(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case models.RoleAdmin:
		return "role.admin"
	case models.RoleCommercial:
		return "role.commercial"
	default:
		return role
	}
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok || strings.TrimSpace(language) == "" {
		return ""
	}
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok || messages == nil {
		return map[string]string{}
	}
	return messages
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	messages := currentMessages(c)
	if _, ok := data["Messages"]; !ok {
		data["Messages"] = messages
	}

	if _, ok := data["Lang"]; !ok {
		language := currentLanguage(c)
		if language == "" {
			language = handler.i18n.DefaultLanguage()
		}
		data["Lang"] = language
	}

	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = currentPathWithQuery(c)
	}

	if _, ok := data["CSRFToken"]; !ok {
		data["CSRFToken"] = csrfToken(c)
	}

	if _, ok := data["CurrentUser"]; !ok {
		if user, found := currentUser(c); found {
			data["CurrentUser"] = user
		}
	}

	if _, ok := data["Projects"]; !ok {
		data["Projects"] = models.Projects()
	}

	if _, ok := data["Brands"]; !ok {
		data["Brands"] = models.Brands()
	}

	if _, ok := data["Flash"]; !ok {
		data["Flash"] = handler.popFlashCookie(c)
	}

	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}
