package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/services"
)

// ShowDashboard is the commercial's prospection entry page.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, err := mustCurrentUser(c)
	if err != nil {
		return err
	}

	handler.ensureDependencies()
	prospections, err := handler.prospectionService.ListForCommercial(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load data")
	}

	return handler.renderOrJSON(c, "dashboard",
		fiber.Map{"prospections": prospections},
		fiber.Map{
			"Title":        localizedPageTitle(currentMessages(c), "meta.title.dashboard", "Prospecta | Tableau de bord"),
			"Prospections": prospections,
			"Structures":   models.PlanningStructures(),
			"Today":        services.FormatDay(handler.today()),
		},
	)
}

func (handler *Handler) CreateProspection(c *fiber.Ctx) error {
	user, err := mustCurrentUser(c)
	if err != nil {
		return err
	}

	form := prospectionForm{}
	if err := c.BodyParser(&form); err != nil {
		return handler.respondWithFlashError(c, fiber.StatusBadRequest, "invalid input", "/dashboard")
	}

	handler.ensureDependencies()
	prospection, err := handler.prospectionService.Create(*user, services.ProspectionInput{
		Date:               form.Date,
		ClientName:         form.ClientName,
		Specialty:          form.Specialty,
		Structure:          form.Structure,
		Phone:              form.Phone,
		ProspectProfiles:   form.ProspectProfiles,
		ProductsPresented:  form.ProductsPresented,
		ProductsPrescribed: form.ProductsPrescribed,
	})
	if err != nil {
		status := fiber.StatusBadRequest
		if !isProspectionValidationError(err) {
			status = fiber.StatusInternalServerError
			slog.Error("create prospection", "user_id", user.ID, "error", err)
		}
		return handler.respondWithFlashError(c, status, err.Error(), "/dashboard")
	}

	slog.Info("prospection recorded", "user_id", user.ID, "prospection_id", prospection.ID)
	return handler.respondWithFlashSuccess(c, fiber.StatusCreated,
		fiber.Map{"ok": true, "prospection": prospection},
		"flash.saved",
		"/dashboard",
	)
}

func isProspectionValidationError(err error) bool {
	return errors.Is(err, services.ErrProspectionDateRequired) ||
		errors.Is(err, services.ErrProspectionFieldRequired) ||
		errors.Is(err, services.ErrProspectionFieldTooLong) ||
		errors.Is(err, services.ErrInvalidDate) ||
		errors.Is(err, services.ErrNotCommercial)
}
