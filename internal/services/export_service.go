package services

import (
	"fmt"
	"sort"

	"github.com/terraincognita07/prospecta/internal/models"
)

var ProspectionExportHeaders = []string{
	"Date",
	"Client Name",
	"Specialty",
	"Structure",
	"Phone",
	"Prospect Profiles",
	"Products Presented",
	"Products Prescribed",
}

type ExportProspectionReader interface {
	ListByCommercial(commercialID uint) ([]models.Prospection, error)
}

type ExportService struct {
	prospections ExportProspectionReader
}

type ProspectionExportRow struct {
	Date               string `json:"date"`
	ClientName         string `json:"client_name"`
	Specialty          string `json:"specialty"`
	Structure          string `json:"structure"`
	Phone              string `json:"phone"`
	ProspectProfiles   string `json:"prospect_profiles"`
	ProductsPresented  string `json:"products_presented"`
	ProductsPrescribed string `json:"products_prescribed"`
}

func NewExportService(prospections ExportProspectionReader) *ExportService {
	return &ExportService{prospections: prospections}
}

// BuildRows returns the commercial's visits ordered by date then id.
func (service *ExportService) BuildRows(commercial models.User) ([]ProspectionExportRow, error) {
	prospections, err := service.prospections.ListByCommercial(commercial.ID)
	if err != nil {
		return nil, fmt.Errorf("load prospections for export: %w", err)
	}

	sort.SliceStable(prospections, func(i, j int) bool {
		if prospections[i].Date.Equal(prospections[j].Date) {
			return prospections[i].ID < prospections[j].ID
		}
		return prospections[i].Date.Before(prospections[j].Date)
	})

	rows := make([]ProspectionExportRow, 0, len(prospections))
	for _, prospection := range prospections {
		rows = append(rows, ProspectionExportRow{
			Date:               FormatDay(prospection.Date),
			ClientName:         prospection.ClientName,
			Specialty:          prospection.Specialty,
			Structure:          prospection.Structure,
			Phone:              prospection.Phone,
			ProspectProfiles:   prospection.ProspectProfiles,
			ProductsPresented:  prospection.ProductsPresented,
			ProductsPrescribed: prospection.ProductsPrescribed,
		})
	}
	return rows, nil
}

func (row ProspectionExportRow) Columns() []string {
	return []string{
		row.Date,
		row.ClientName,
		row.Specialty,
		row.Structure,
		row.Phone,
		row.ProspectProfiles,
		row.ProductsPresented,
		row.ProductsPrescribed,
	}
}

func ProspectionExportFileName(username string, extension string) string {
	return fmt.Sprintf("prospections_%s.%s", username, extension)
}
