package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/services"
)

func (handler *Handler) ShowRevenue(c *fiber.Ctx) error {
	handler.ensureDependencies()
	table, err := handler.revenueService.GlobalRevenue()
	if err != nil {
		return err
	}
	return handler.renderRevenueTable(c, "", table)
}

func (handler *Handler) ShowProjectRevenue(c *fiber.Ctx) error {
	project := strings.ToLower(strings.TrimSpace(c.Params("project")))

	handler.ensureDependencies()
	table, err := handler.revenueService.ProjectRevenue(project)
	if err != nil {
		if errors.Is(err, services.ErrUnknownProject) {
			return handler.respondWithFlashError(c, fiber.StatusNotFound, err.Error(), "/revenue")
		}
		return err
	}
	return handler.renderRevenueTable(c, project, table)
}

func (handler *Handler) renderRevenueTable(c *fiber.Ctx, project string, table services.RevenueTable) error {
	return handler.renderOrJSON(c, "revenue",
		fiber.Map{
			"project":      project,
			"table":        table,
			"chart_labels": table.ChartLabels(),
			"chart_data":   table.ChartData(),
			"total":        table.GrandTotal(),
		},
		fiber.Map{
			"Title":   localizedPageTitle(currentMessages(c), "meta.title.revenue", "Prospecta | Chiffre d'affaires"),
			"Project": project,
			"Table":   table,
		},
	)
}

// ShowMonthlyRevenue drills into one month of a project, product by product.
func (handler *Handler) ShowMonthlyRevenue(c *fiber.Ctx) error {
	project := strings.ToLower(strings.TrimSpace(c.Params("project")))

	handler.ensureDependencies()
	breakdown, err := handler.revenueService.MonthlyBreakdown(project, c.Params("month"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownProject):
			return handler.respondWithFlashError(c, fiber.StatusNotFound, err.Error(), "/revenue")
		case errors.Is(err, services.ErrInvalidMonth):
			return handler.respondWithFlashError(c, fiber.StatusBadRequest, err.Error(), "/revenue/"+project)
		default:
			return err
		}
	}

	return handler.renderOrJSON(c, "revenue_detail",
		breakdown,
		fiber.Map{
			"Title":     localizedPageTitle(currentMessages(c), "meta.title.revenue", "Prospecta | Chiffre d'affaires"),
			"Breakdown": breakdown,
		},
	)
}
