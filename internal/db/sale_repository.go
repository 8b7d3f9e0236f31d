package db

import (
	"time"

	"github.com/terraincognita07/prospecta/internal/models"
	"gorm.io/gorm"
)

type SaleRepository struct {
	database *gorm.DB
}

func NewSaleRepository(database *gorm.DB) *SaleRepository {
	return &SaleRepository{database: database}
}

// CreateBatch inserts every sale or none of them.
func (repo *SaleRepository) CreateBatch(sales []models.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for index := range sales {
			if err := tx.Create(&sales[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// MonthlyRevenue sums quantity x price per calendar month for one brand,
// ascending by month. An empty project keeps every sale of the brand.
func (repo *SaleRepository) MonthlyRevenue(brand string, project string) ([]models.MonthlyRevenue, error) {
	query := repo.database.
		Model(&models.Sale{}).
		Select("substr(date, 1, 7) AS month, COALESCE(SUM(quantity * price), 0) AS revenue").
		Where("brand = ?", brand)
	if project != "" {
		query = query.Where("project = ?", project)
	}

	rows := make([]models.MonthlyRevenue, 0)
	if err := query.Group("month").Order("month ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductRevenueForMonth breaks one brand's month down by product.
func (repo *SaleRepository) ProductRevenueForMonth(brand string, project string, monthStart time.Time) ([]models.ProductRevenue, error) {
	monthEnd := monthStart.AddDate(0, 1, 0)
	query := repo.database.
		Table("sales").
		Select("products.id AS product_id, products.name AS product_name, SUM(sales.quantity) AS quantity, SUM(sales.quantity * sales.price) AS revenue").
		Joins("JOIN products ON products.id = sales.product_id").
		Where("sales.brand = ? AND sales.date >= ? AND sales.date < ?", brand, monthStart, monthEnd)
	if project != "" {
		query = query.Where("sales.project = ?", project)
	}

	rows := make([]models.ProductRevenue, 0)
	if err := query.
		Group("products.id, products.name").
		Order("products.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *SaleRepository) ListByCommercial(commercialID uint) ([]models.Sale, error) {
	sales := make([]models.Sale, 0)
	if err := repo.database.
		Where("commercial_id = ?", commercialID).
		Order("date DESC, id DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
