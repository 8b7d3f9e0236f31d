package api

import (
	"bytes"
	"encoding/csv"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	commercial, rows, handled, err := handler.exportCommercialRows(c)
	if handled || err != nil {
		return err
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ProspectionExportHeaders); err != nil {
		return handler.respondExportError(c, commercial, err)
	}
	for _, row := range rows {
		if err := writer.Write(row.Columns()); err != nil {
			return handler.respondExportError(c, commercial, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return handler.respondExportError(c, commercial, err)
	}

	slog.Info("prospections exported", "format", "csv", "commercial_id", commercial.ID, "rows", len(rows))
	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", services.ProspectionExportFileName(commercial.Username, "csv"))
	return c.Send(output.Bytes())
}
