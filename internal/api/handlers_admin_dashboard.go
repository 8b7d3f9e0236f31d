package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/services"
)

// ShowAdminDashboard renders global revenue, the global visit ranking and the
// filtered recap table. Unparseable filter values are ignored and reported.
func (handler *Handler) ShowAdminDashboard(c *fiber.Ctx) error {
	query := recapFilterQuery{}
	if err := c.QueryParser(&query); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	filter, invalid := services.ParseProspectionFilter(services.ProspectionFilterInput{
		DateStart:  query.DateStart,
		DateEnd:    query.DateEnd,
		Commercial: query.Commercial,
		Zone:       query.Zone,
		Specialty:  query.Specialty,
	})

	handler.ensureDependencies()
	revenue, err := handler.revenueService.GlobalRevenue()
	if err != nil {
		return err
	}
	commercials, err := handler.commercialService.List("")
	if err != nil {
		return err
	}
	topCommercials, err := handler.rankingService.TopCommercials("")
	if err != nil {
		return err
	}
	recap, err := handler.prospectionService.Filter(filter)
	if err != nil {
		return err
	}
	zones, err := handler.commercialService.Zones()
	if err != nil {
		return err
	}
	specialties, err := handler.prospectionService.Specialties()
	if err != nil {
		return err
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"revenue":         revenue,
			"chart_labels":    revenue.ChartLabels(),
			"chart_data":      revenue.ChartData(),
			"commercials":     commercials,
			"top_commercials": topCommercials,
			"prospections":    recap,
			"invalid_filters": invalid,
		})
	}

	flash := handler.popFlashCookie(c)
	if len(invalid) > 0 && flash.Error == "" {
		flash.Error = "invalid date filter"
	}

	return handler.render(c, "admin_dashboard", fiber.Map{
		"Title":          localizedPageTitle(currentMessages(c), "meta.title.admin", "Prospecta | Administration"),
		"Flash":          flash,
		"Revenue":        revenue,
		"Commercials":    commercials,
		"TopCommercials": topCommercials,
		"Prospections":   recap,
		"Zones":          zones,
		"Specialties":    specialties,
		"Filter":         query,
		"InvalidFilters": invalid,
	})
}
