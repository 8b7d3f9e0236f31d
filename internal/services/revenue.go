package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/prospecta/internal/models"
)

const revenueMonthLayout = "2006-01"

var (
	ErrUnknownProject = errors.New("unknown project")
	ErrInvalidMonth   = errors.New("invalid month")
)

type RevenueSaleReader interface {
	MonthlyRevenue(brand string, project string) ([]models.MonthlyRevenue, error)
	ProductRevenueForMonth(brand string, project string, monthStart time.Time) ([]models.ProductRevenue, error)
}

// RevenueRow holds one month of the merged table. Amounts has an entry for
// every brand of the table, zero when the brand sold nothing that month.
type RevenueRow struct {
	Month   string             `json:"month"`
	Amounts map[string]float64 `json:"amounts"`
	Total   float64            `json:"total"`
}

func (row RevenueRow) Amount(brand string) float64 {
	return row.Amounts[brand]
}

type RevenueTable struct {
	Brands []models.Brand `json:"brands"`
	Rows   []RevenueRow   `json:"rows"`
}

func (table RevenueTable) ChartLabels() []string {
	labels := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		labels = append(labels, row.Month)
	}
	return labels
}

func (table RevenueTable) ChartData() []float64 {
	data := make([]float64, 0, len(table.Rows))
	for _, row := range table.Rows {
		data = append(data, row.Total)
	}
	return data
}

func (table RevenueTable) BrandTotal(brand string) float64 {
	total := 0.0
	for _, row := range table.Rows {
		total += row.Amounts[brand]
	}
	return total
}

func (table RevenueTable) GrandTotal() float64 {
	total := 0.0
	for _, row := range table.Rows {
		total += row.Total
	}
	return total
}

// MergeMonthlyRevenue joins per-brand monthly series into one table keyed by
// month. Brands are visited in the given order; the first brand to mention a
// month creates its row. Output rows are sorted by month key.
func MergeMonthlyRevenue(brands []models.Brand, series map[string][]models.MonthlyRevenue) RevenueTable {
	rowsByMonth := make(map[string]*RevenueRow)
	months := make([]string, 0)

	for _, brand := range brands {
		for _, entry := range series[brand.Code] {
			row, exists := rowsByMonth[entry.Month]
			if !exists {
				row = &RevenueRow{Month: entry.Month, Amounts: zeroBrandAmounts(brands)}
				rowsByMonth[entry.Month] = row
				months = append(months, entry.Month)
			}
			row.Amounts[brand.Code] += entry.Revenue
		}
	}

	sort.Strings(months)

	rows := make([]RevenueRow, 0, len(months))
	for _, month := range months {
		row := rowsByMonth[month]
		for _, brand := range brands {
			row.Total += row.Amounts[brand.Code]
		}
		rows = append(rows, *row)
	}

	return RevenueTable{Brands: brands, Rows: rows}
}

func zeroBrandAmounts(brands []models.Brand) map[string]float64 {
	amounts := make(map[string]float64, len(brands))
	for _, brand := range brands {
		amounts[brand.Code] = 0
	}
	return amounts
}

type BrandBreakdown struct {
	Brand    models.Brand            `json:"brand"`
	Products []models.ProductRevenue `json:"products"`
	Total    float64                 `json:"total"`
}

type MonthlyBreakdown struct {
	Project string           `json:"project"`
	Month   string           `json:"month"`
	Brands  []BrandBreakdown `json:"brands"`
	Total   float64          `json:"total"`
}

type RevenueService struct {
	sales RevenueSaleReader
}

func NewRevenueService(sales RevenueSaleReader) *RevenueService {
	return &RevenueService{sales: sales}
}

// GlobalRevenue merges every declared brand without a project filter.
func (service *RevenueService) GlobalRevenue() (RevenueTable, error) {
	return service.buildTable(models.Brands(), "")
}

// ProjectRevenue merges the brands of project, counting only sales stamped with it.
func (service *RevenueService) ProjectRevenue(project string) (RevenueTable, error) {
	if !models.IsKnownProject(project) {
		return RevenueTable{}, ErrUnknownProject
	}
	return service.buildTable(models.BrandsForProject(project), project)
}

func (service *RevenueService) buildTable(brands []models.Brand, project string) (RevenueTable, error) {
	series := make(map[string][]models.MonthlyRevenue, len(brands))
	for _, brand := range brands {
		rows, err := service.sales.MonthlyRevenue(brand.Code, project)
		if err != nil {
			return RevenueTable{}, fmt.Errorf("load %s monthly revenue: %w", brand.Code, err)
		}
		series[brand.Code] = rows
	}
	return MergeMonthlyRevenue(brands, series), nil
}

func (service *RevenueService) MonthlyBreakdown(project string, month string) (MonthlyBreakdown, error) {
	if !models.IsKnownProject(project) {
		return MonthlyBreakdown{}, ErrUnknownProject
	}
	monthStart, err := ParseRevenueMonth(month)
	if err != nil {
		return MonthlyBreakdown{}, err
	}

	result := MonthlyBreakdown{
		Project: project,
		Month:   monthStart.Format(revenueMonthLayout),
		Brands:  make([]BrandBreakdown, 0, 2),
	}
	for _, brand := range models.BrandsForProject(project) {
		products, err := service.sales.ProductRevenueForMonth(brand.Code, project, monthStart)
		if err != nil {
			return MonthlyBreakdown{}, fmt.Errorf("load %s product revenue: %w", brand.Code, err)
		}
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ProductName < products[j].ProductName
		})

		breakdown := BrandBreakdown{Brand: brand, Products: products}
		for _, product := range products {
			breakdown.Total += product.Revenue
		}
		result.Total += breakdown.Total
		result.Brands = append(result.Brands, breakdown)
	}
	return result, nil
}

// ParseRevenueMonth accepts a YYYY-MM key and returns the first day of that month in UTC.
func ParseRevenueMonth(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(revenueMonthLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return parsed, nil
}
