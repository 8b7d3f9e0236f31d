package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/terraincognita07/prospecta/internal/services"
)

const PDFContentType = "application/pdf"

// Letter page in points, origin at the top left.
const (
	pdfPageHeight   = 792.0
	pdfLeftMargin   = 100.0
	pdfTitleY       = 42.0
	pdfFirstLineY   = 62.0
	pdfLineHeight   = 20.0
	pdfBottomMargin = 50.0
)

// WriteProspectionsPDF writes a title line then one "Date: ..., Client: ..."
// line per prospection, continuing on a new page past the bottom margin.
func WriteProspectionsPDF(w io.Writer, username string, rows []services.ProspectionExportRow) error {
	document := buildProspectionsPDF(username, rows)
	if err := document.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func buildProspectionsPDF(username string, rows []services.ProspectionExportRow) *fpdf.Fpdf {
	document := fpdf.New("P", "pt", "Letter", "")
	document.SetTitle("Prospections - "+username, true)
	translate := document.UnicodeTranslatorFromDescriptor("")

	document.AddPage()
	document.SetFont("Helvetica", "B", 14)
	document.Text(pdfLeftMargin, pdfTitleY, translate("Prospections - "+username))

	document.SetFont("Helvetica", "", 11)
	y := pdfFirstLineY
	for _, row := range rows {
		if y > pdfPageHeight-pdfBottomMargin {
			document.AddPage()
			y = pdfTitleY
		}
		document.Text(pdfLeftMargin, y, translate(fmt.Sprintf("Date: %s, Client: %s", row.Date, row.ClientName)))
		y += pdfLineHeight
	}
	return document
}
