package db

import (
	"github.com/terraincognita07/prospecta/internal/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	database *gorm.DB
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{database: database}
}

func (repo *ProductRepository) ListByBrand(brand string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := repo.database.
		Where("brand = ?", brand).
		Order("name ASC, id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) FindByBrandAndID(brand string, productID uint) (models.Product, error) {
	var product models.Product
	if err := repo.database.Where("brand = ? AND id = ?", brand, productID).First(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (repo *ProductRepository) UpdateStock(productID uint, stock models.ProductStock) error {
	return repo.database.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]any{
		"stock_duopharm":  stock.Duopharm,
		"stock_ubipharm":  stock.Ubipharm,
		"stock_laborex":   stock.Laborex,
		"stock_sodipharm": stock.Sodipharm,
	}).Error
}
