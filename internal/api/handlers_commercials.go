package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/services"
)

func (handler *Handler) ShowCommercialDetail(c *fiber.Ctx) error {
	commercial, handled, err := handler.lookupCommercialByUsername(c)
	if handled || err != nil {
		return err
	}

	prospections, err := handler.prospectionService.ListForCommercial(commercial.ID)
	if err != nil {
		return err
	}

	basePath := commercialPath(commercial.Username)
	return handler.renderOrJSON(c, "commercial_detail",
		fiber.Map{"commercial": commercial, "prospections": prospections},
		fiber.Map{
			"Title":        localizedPageTitle(currentMessages(c), "meta.title.commercial", "Prospecta | Commercial"),
			"Commercial":   commercial,
			"Prospections": prospections,
			"ExportXLSX":   basePath + "/export/xlsx",
			"ExportPDF":    basePath + "/export/pdf",
			"ExportCSV":    basePath + "/export/csv",
		},
	)
}

// lookupCommercialByUsername resolves :username. When the user is unknown the
// response has already been written and handled is true.
func (handler *Handler) lookupCommercialByUsername(c *fiber.Ctx) (models.User, bool, error) {
	handler.ensureDependencies()
	commercial, err := handler.commercialService.FindByUsername(pathParam(c, "username"))
	if err == nil {
		return commercial, false, nil
	}
	if errors.Is(err, services.ErrCommercialNotFound) {
		return models.User{}, true, handler.respondWithFlashError(c, fiber.StatusNotFound, err.Error(), "/admin")
	}
	return models.User{}, true, err
}
