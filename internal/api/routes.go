package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPublicRoutes(app, handler)
	registerCommercialRoutes(app, handler)
	registerReportingRoutes(app, handler)
	registerAdminRoutes(app, handler)
}

func registerPublicRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowWelcome)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/logout", handler.AuthRequired, handler.Logout)
	app.Post("/logout", handler.AuthRequired, handler.Logout)
}

func registerCommercialRoutes(app *fiber.App, handler *Handler) {
	commercialOnly := handler.RequireRoles(models.RoleCommercial)
	anyRole := handler.RequireRoles(models.RoleAdmin, models.RoleCommercial)

	app.Get("/dashboard", handler.AuthRequired, commercialOnly, handler.ShowDashboard)
	app.Post("/prospections", handler.AuthRequired, commercialOnly, handler.CreateProspection)

	app.Get("/plannings", handler.AuthRequired, commercialOnly, handler.ShowPlannings)
	app.Get("/plannings/new", handler.AuthRequired, commercialOnly, handler.ShowPlanningForm)
	app.Post("/plannings", handler.AuthRequired, commercialOnly, handler.CreatePlanning)
	app.Get("/plannings/:id<int>", handler.AuthRequired, anyRole, handler.ShowPlanning)
}

func registerReportingRoutes(app *fiber.App, handler *Handler) {
	anyRole := handler.RequireRoles(models.RoleAdmin, models.RoleCommercial)

	app.Get("/admin", handler.AuthRequired, anyRole, handler.ShowAdminDashboard)
	app.Get("/projects/:project", handler.AuthRequired, anyRole, handler.ShowProjectDashboard)

	commercials := app.Group("/commercials/:username", handler.AuthRequired, anyRole)
	commercials.Get("", handler.ShowCommercialDetail)
	commercials.Get("/export/xlsx", handler.ExportXLSX)
	commercials.Get("/export/pdf", handler.ExportPDF)
	commercials.Get("/export/csv", handler.ExportCSV)

	sales := app.Group("/sales/:brand", handler.AuthRequired, anyRole)
	sales.Get("", handler.ShowSalesForm)
	sales.Post("", handler.RecordSales)

	revenue := app.Group("/revenue", handler.AuthRequired, anyRole)
	revenue.Get("", handler.ShowRevenue)
	revenue.Get("/:project", handler.ShowProjectRevenue)
	revenue.Get("/:project/:month", handler.ShowMonthlyRevenue)
}

func registerAdminRoutes(app *fiber.App, handler *Handler) {
	adminOnly := handler.RequireRoles(models.RoleAdmin)

	app.Get("/admin/plannings", handler.AuthRequired, adminOnly, handler.ShowAdminPlannings)
	app.Get("/admin/plannings/:id", handler.AuthRequired, adminOnly, handler.ShowCommercialPlannings)
	app.Post("/sales/:brand/products/:id/stock", handler.AuthRequired, adminOnly, handler.UpdateStock)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
