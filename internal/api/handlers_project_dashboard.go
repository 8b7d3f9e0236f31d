package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/services"
)

func (handler *Handler) ShowProjectDashboard(c *fiber.Ctx) error {
	project := strings.ToLower(strings.TrimSpace(c.Params("project")))
	if !models.IsKnownProject(project) {
		return handler.respondWithFlashError(c, fiber.StatusNotFound, services.ErrUnknownProject.Error(), "/admin")
	}

	handler.ensureDependencies()
	prospections, err := handler.prospectionService.ListForProject(project)
	if err != nil {
		if errors.Is(err, services.ErrUnknownProject) {
			return handler.respondWithFlashError(c, fiber.StatusNotFound, err.Error(), "/admin")
		}
		return err
	}
	revenue, err := handler.revenueService.ProjectRevenue(project)
	if err != nil {
		return err
	}
	topCommercials, err := handler.rankingService.TopCommercials(project)
	if err != nil {
		return err
	}
	commercials, err := handler.commercialService.List(project)
	if err != nil {
		return err
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"project":         project,
			"prospections":    prospections,
			"revenue":         revenue,
			"chart_labels":    revenue.ChartLabels(),
			"chart_data":      revenue.ChartData(),
			"top_commercials": topCommercials,
			"commercials":     commercials,
		})
	}

	flash := handler.popFlashCookie(c)
	if len(prospections) == 0 && flash.Info == "" {
		flash.Info = "project.no_data"
	}

	return handler.render(c, "project_dashboard", fiber.Map{
		"Title":          localizedPageTitle(currentMessages(c), "meta.title.project", "Prospecta | Projet"),
		"Flash":          flash,
		"Project":        project,
		"Prospections":   prospections,
		"Revenue":        revenue,
		"TopCommercials": topCommercials,
		"Commercials":    commercials,
	})
}
