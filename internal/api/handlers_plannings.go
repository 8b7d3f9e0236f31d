package api

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/services"
)

type planningPayload struct {
	WeekStart string              `json:"week_start"`
	Slots     map[string][]string `json:"slots"`
}

func (handler *Handler) ShowPlannings(c *fiber.Ctx) error {
	user, err := mustCurrentUser(c)
	if err != nil {
		return err
	}

	handler.ensureDependencies()
	plannings, err := handler.planningService.ListForCommercial(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load data")
	}

	return handler.renderOrJSON(c, "plannings",
		fiber.Map{"plannings": plannings},
		fiber.Map{
			"Title":     localizedPageTitle(currentMessages(c), "meta.title.plannings", "Prospecta | Plannings"),
			"Plannings": plannings,
			"Slots":     models.PlanningSlots(),
		},
	)
}

func (handler *Handler) ShowPlanningForm(c *fiber.Ctx) error {
	return handler.render(c, "planning_form", fiber.Map{
		"Title":      localizedPageTitle(currentMessages(c), "meta.title.planning_form", "Prospecta | Nouveau planning"),
		"Slots":      models.PlanningSlots(),
		"Structures": models.PlanningStructures(),
		"WeekStart":  services.FormatDay(handler.today()),
	})
}

func (handler *Handler) CreatePlanning(c *fiber.Ctx) error {
	user, err := mustCurrentUser(c)
	if err != nil {
		return err
	}

	input, err := parsePlanningInput(c)
	if err != nil {
		return handler.respondWithFlashError(c, fiber.StatusBadRequest, "invalid input", "/plannings/new")
	}

	handler.ensureDependencies()
	planning, err := handler.planningService.Create(*user, input)
	if err != nil {
		status := fiber.StatusBadRequest
		if !isPlanningValidationError(err) {
			status = fiber.StatusInternalServerError
			slog.Error("create planning", "user_id", user.ID, "error", err)
		}
		return handler.respondWithFlashError(c, status, err.Error(), "/plannings/new")
	}

	slog.Info("planning recorded", "user_id", user.ID, "planning_id", planning.ID)
	return handler.respondWithFlashSuccess(c, fiber.StatusCreated,
		fiber.Map{"ok": true, "planning": planning},
		"flash.saved",
		"/plannings",
	)
}

// ShowPlanning renders one planning. Commercials only see their own weeks.
func (handler *Handler) ShowPlanning(c *fiber.Ctx) error {
	user, err := mustCurrentUser(c)
	if err != nil {
		return err
	}

	fallback := "/plannings"
	if user.IsAdmin() {
		fallback = "/admin/plannings"
	}

	planningID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || planningID == 0 {
		return handler.respondWithFlashError(c, fiber.StatusNotFound, "planning not found", fallback)
	}

	handler.ensureDependencies()
	planning, err := handler.planningService.Find(uint(planningID))
	if err != nil {
		if errors.Is(err, services.ErrPlanningNotFound) {
			return handler.respondWithFlashError(c, fiber.StatusNotFound, "planning not found", fallback)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load data")
	}
	if !user.IsAdmin() && planning.CommercialID != user.ID {
		return handler.respondWithFlashError(c, fiber.StatusNotFound, "planning not found", fallback)
	}

	return handler.renderOrJSON(c, "admin_planning_detail",
		fiber.Map{"planning": planning},
		fiber.Map{
			"Title":      localizedPageTitle(currentMessages(c), "meta.title.plannings", "Prospecta | Plannings"),
			"Commercial": planning.Commercial,
			"Plannings":  []models.Planning{planning},
			"Slots":      models.PlanningSlots(),
			"BackPath":   fallback,
		},
	)
}

// ShowAdminPlannings lists every commercial with a link to their plannings.
func (handler *Handler) ShowAdminPlannings(c *fiber.Ctx) error {
	handler.ensureDependencies()
	commercials, err := handler.commercialService.List("")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load data")
	}

	return handler.renderOrJSON(c, "admin_plannings",
		fiber.Map{"commercials": commercials},
		fiber.Map{
			"Title":       localizedPageTitle(currentMessages(c), "meta.title.admin_plannings", "Prospecta | Plannings des commerciaux"),
			"Commercials": commercials,
		},
	)
}

func (handler *Handler) ShowCommercialPlannings(c *fiber.Ctx) error {
	commercialID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || commercialID == 0 {
		return handler.respondWithFlashError(c, fiber.StatusNotFound, "commercial not found", "/admin/plannings")
	}

	handler.ensureDependencies()
	commercial, err := handler.commercialService.FindCommercial(uint(commercialID))
	if err != nil {
		if errors.Is(err, services.ErrCommercialNotFound) {
			return handler.respondWithFlashError(c, fiber.StatusNotFound, "commercial not found", "/admin/plannings")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load data")
	}

	plannings, err := handler.planningService.ListForCommercial(commercial.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load data")
	}

	return handler.renderOrJSON(c, "admin_planning_detail",
		fiber.Map{"commercial": commercial, "plannings": plannings},
		fiber.Map{
			"Title":      localizedPageTitle(currentMessages(c), "meta.title.plannings", "Prospecta | Plannings"),
			"Commercial": commercial,
			"Plannings":  plannings,
			"Slots":      models.PlanningSlots(),
			"BackPath":   "/admin/plannings",
		},
	)
}

// parsePlanningInput reads either a JSON payload or a form where every slot
// key may repeat once per checked structure.
func parsePlanningInput(c *fiber.Ctx) (services.PlanningInput, error) {
	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
		payload := planningPayload{}
		if err := c.BodyParser(&payload); err != nil {
			return services.PlanningInput{}, err
		}
		return services.PlanningInput{WeekStart: payload.WeekStart, Slots: payload.Slots}, nil
	}

	input := services.PlanningInput{
		WeekStart: c.FormValue("week_start"),
		Slots:     make(map[string][]string),
	}
	multipartForm, multipartErr := c.MultipartForm()
	for _, slot := range models.PlanningSlots() {
		if multipartErr == nil {
			input.Slots[slot.Key] = append(input.Slots[slot.Key], multipartForm.Value[slot.Key]...)
			continue
		}
		for _, value := range c.Request().PostArgs().PeekMulti(slot.Key) {
			input.Slots[slot.Key] = append(input.Slots[slot.Key], string(value))
		}
	}
	return input, nil
}

func isPlanningValidationError(err error) bool {
	return errors.Is(err, services.ErrPlanningWeekStartRequired) ||
		errors.Is(err, services.ErrPlanningUnknownStructure) ||
		errors.Is(err, services.ErrInvalidDate) ||
		errors.Is(err, services.ErrNotCommercial)
}
