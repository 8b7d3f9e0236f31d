package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BrandNovaPharma  = "nova_pharma"
	BrandGilbert     = "gilbert"
	BrandEricFavre   = "eric_favre"
	BrandTroisChenes = "trois_chenes"
)

// Brand is a product line. Its Project is stamped on every sale of the brand.
type Brand struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Project string `json:"project"`
}

var brands = []Brand{
	{Code: BrandNovaPharma, Name: "Nova Pharma", Project: ProjectNasderm},
	{Code: BrandGilbert, Name: "Gilbert", Project: ProjectNasderm},
	{Code: BrandEricFavre, Name: "Eric Favre", Project: ProjectNasmedic},
	{Code: BrandTroisChenes, Name: "Trois Chênes", Project: ProjectNasmedic},
}

// Brands returns the declared brands in merge priority order.
func Brands() []Brand {
	result := make([]Brand, len(brands))
	copy(result, brands)
	return result
}

func FindBrand(code string) (Brand, bool) {
	for _, brand := range brands {
		if brand.Code == code {
			return brand, true
		}
	}
	return Brand{}, false
}

// BrandsForProject keeps the declared priority order.
func BrandsForProject(project string) []Brand {
	result := make([]Brand, 0, len(brands))
	for _, brand := range brands {
		if brand.Project == project {
			result = append(result, brand)
		}
	}
	return result
}

type Product struct {
	ID             uint    `gorm:"primaryKey"`
	Brand          string  `gorm:"not null;index"`
	Name           string  `gorm:"not null"`
	DefaultPrice   float64 `gorm:"not null"`
	StockDuopharm  int     `gorm:"not null;default:0"`
	StockUbipharm  int     `gorm:"not null;default:0"`
	StockLaborex   int     `gorm:"not null;default:0"`
	StockSodipharm int     `gorm:"not null;default:0"`
}

type Sale struct {
	ID           uint      `gorm:"primaryKey"`
	Brand        string    `gorm:"not null;index"`
	ProductID    uint      `gorm:"not null;index"`
	Quantity     int       `gorm:"not null"`
	Price        float64   `gorm:"not null"`
	Date         time.Time `gorm:"type:date;not null;index"`
	CommercialID uint      `gorm:"not null;index"`
	Project      string    `gorm:"not null;index"`
	CreatedAt    time.Time
}

func (product Product) TotalStock() int {
	return product.StockDuopharm + product.StockUbipharm + product.StockLaborex + product.StockSodipharm
}

// Revenue is quantity x unit price computed in decimal arithmetic.
func (sale Sale) Revenue() float64 {
	return decimal.NewFromFloat(sale.Price).Mul(decimal.NewFromInt(int64(sale.Quantity))).InexactFloat64()
}

// ProductStock is the per-distributor stock counter set of a product.
type ProductStock struct {
	Duopharm  int
	Ubipharm  int
	Laborex   int
	Sodipharm int
}

func (product Product) Stock() ProductStock {
	return ProductStock{
		Duopharm:  product.StockDuopharm,
		Ubipharm:  product.StockUbipharm,
		Laborex:   product.StockLaborex,
		Sodipharm: product.StockSodipharm,
	}
}
