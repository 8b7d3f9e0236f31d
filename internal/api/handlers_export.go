package api

import (
	"bytes"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/export"
	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/services"
)

func (handler *Handler) ExportXLSX(c *fiber.Ctx) error {
	commercial, rows, handled, err := handler.exportCommercialRows(c)
	if handled || err != nil {
		return err
	}

	var output bytes.Buffer
	if err := export.WriteProspectionsXLSX(&output, rows); err != nil {
		return handler.respondExportError(c, commercial, err)
	}

	slog.Info("prospections exported", "format", "xlsx", "commercial_id", commercial.ID, "rows", len(rows))
	setExportAttachmentHeaders(c, export.XLSXContentType, services.ProspectionExportFileName(commercial.Username, "xlsx"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportPDF(c *fiber.Ctx) error {
	commercial, rows, handled, err := handler.exportCommercialRows(c)
	if handled || err != nil {
		return err
	}

	var output bytes.Buffer
	if err := export.WriteProspectionsPDF(&output, commercial.Username, rows); err != nil {
		return handler.respondExportError(c, commercial, err)
	}

	slog.Info("prospections exported", "format", "pdf", "commercial_id", commercial.ID, "rows", len(rows))
	setExportAttachmentHeaders(c, export.PDFContentType, services.ProspectionExportFileName(commercial.Username, "pdf"))
	return c.Send(output.Bytes())
}

func (handler *Handler) exportCommercialRows(c *fiber.Ctx) (models.User, []services.ProspectionExportRow, bool, error) {
	commercial, handled, err := handler.lookupCommercialByUsername(c)
	if handled || err != nil {
		return models.User{}, nil, handled, err
	}

	rows, err := handler.exportService.BuildRows(commercial)
	if err != nil {
		return models.User{}, nil, true, handler.respondExportError(c, commercial, err)
	}
	return commercial, rows, false, nil
}

func (handler *Handler) respondExportError(c *fiber.Ctx, commercial models.User, err error) error {
	slog.Error("export prospections", "commercial_id", commercial.ID, "error", err)
	return handler.respondWithFlashError(c, fiber.StatusInternalServerError, err.Error(), commercialPath(commercial.Username))
}
