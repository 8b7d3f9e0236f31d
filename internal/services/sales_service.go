package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/terraincognita07/prospecta/internal/models"
)

var (
	ErrUnknownBrand        = errors.New("unknown brand")
	ErrSaleDateRequired    = errors.New("date required")
	ErrSaleQuantityInvalid = errors.New("invalid quantity")
	ErrSalePriceInvalid    = errors.New("invalid price")
	ErrSalePriceNegative   = errors.New("negative price")
	ErrProductNotFound     = errors.New("product not found")
	ErrStockInvalid        = errors.New("invalid stock value")
)

type SaleProductReader interface {
	ListByBrand(brand string) ([]models.Product, error)
	FindByBrandAndID(brand string, productID uint) (models.Product, error)
	UpdateStock(productID uint, stock models.ProductStock) error
}

type SaleStore interface {
	CreateBatch(sales []models.Sale) error
	ListByCommercial(commercialID uint) ([]models.Sale, error)
}

// SaleLineInput is the raw quantity and unit price submitted for one product.
type SaleLineInput struct {
	Quantity string
	Price    string
}

type SalesEntryInput struct {
	Brand        string
	CommercialID uint
	SaleDate     string
	Lines        map[uint]SaleLineInput
}

type StockInput struct {
	Duopharm  string
	Ubipharm  string
	Laborex   string
	Sodipharm string
}

type SalesService struct {
	products SaleProductReader
	sales    SaleStore
}

func NewSalesService(products SaleProductReader, sales SaleStore) *SalesService {
	return &SalesService{products: products, sales: sales}
}

// Catalog returns the brand declaration and its products.
func (service *SalesService) Catalog(brandCode string) (models.Brand, []models.Product, error) {
	brand, ok := models.FindBrand(strings.TrimSpace(brandCode))
	if !ok {
		return models.Brand{}, nil, ErrUnknownBrand
	}
	products, err := service.products.ListByBrand(brand.Code)
	if err != nil {
		return models.Brand{}, nil, fmt.Errorf("list %s products: %w", brand.Code, err)
	}
	return brand, products, nil
}

// RecordSales turns one sales form submission into Sale rows. Lines with a
// missing or non-positive quantity are skipped; any malformed value rejects
// the whole submission before anything is written.
func (service *SalesService) RecordSales(input SalesEntryInput) ([]models.Sale, error) {
	brand, products, err := service.Catalog(input.Brand)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.SaleDate) == "" {
		return nil, ErrSaleDateRequired
	}
	saleDay, err := ParseDay(input.SaleDate)
	if err != nil {
		return nil, err
	}

	sales := make([]models.Sale, 0, len(input.Lines))
	for _, product := range products {
		line, submitted := input.Lines[product.ID]
		if !submitted {
			continue
		}

		quantity, err := parseSaleQuantity(line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", product.Name, err)
		}
		if quantity <= 0 {
			continue
		}

		price, err := parseSalePrice(line.Price, product.DefaultPrice)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", product.Name, err)
		}

		sales = append(sales, models.Sale{
			Brand:        brand.Code,
			ProductID:    product.ID,
			Quantity:     quantity,
			Price:        price.InexactFloat64(),
			Date:         saleDay,
			CommercialID: input.CommercialID,
			Project:      brand.Project,
		})
	}

	if len(sales) == 0 {
		return sales, nil
	}
	if err := service.sales.CreateBatch(sales); err != nil {
		return nil, fmt.Errorf("record %s sales: %w", brand.Code, err)
	}
	return sales, nil
}

func parseSaleQuantity(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	quantity, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrSaleQuantityInvalid, trimmed)
	}
	return quantity, nil
}

func parseSalePrice(raw string, defaultPrice float64) (decimal.Decimal, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if trimmed == "" {
		return decimal.NewFromFloat(defaultPrice), nil
	}
	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w %q", ErrSalePriceInvalid, strings.TrimSpace(raw))
	}
	if price.IsNegative() {
		return decimal.Decimal{}, ErrSalePriceNegative
	}
	return price, nil
}

// ListForCommercial returns the sales attributed to commercialID for one brand.
func (service *SalesService) ListForCommercial(commercialID uint, brandCode string) ([]models.Sale, error) {
	brand, ok := models.FindBrand(strings.TrimSpace(brandCode))
	if !ok {
		return nil, ErrUnknownBrand
	}
	sales, err := service.sales.ListByCommercial(commercialID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	result := make([]models.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.Brand == brand.Code {
			result = append(result, sale)
		}
	}
	return result, nil
}

// SalesRevenue sums line revenue of sales in decimal arithmetic.
func SalesRevenue(sales []models.Sale) float64 {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(decimal.NewFromFloat(sale.Price).Mul(decimal.NewFromInt(int64(sale.Quantity))))
	}
	return total.InexactFloat64()
}

// UpdateStock replaces the four wholesale counters of a product of brandCode.
func (service *SalesService) UpdateStock(brandCode string, productID uint, input StockInput) (models.Product, error) {
	brand, ok := models.FindBrand(strings.TrimSpace(brandCode))
	if !ok {
		return models.Product{}, ErrUnknownBrand
	}
	product, err := service.products.FindByBrandAndID(brand.Code, productID)
	if err != nil {
		if isRecordNotFound(err) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}

	current := product.Stock()
	stock := models.ProductStock{}
	counters := []struct {
		name    string
		raw     string
		current int
		target  *int
	}{
		{"duopharm", input.Duopharm, current.Duopharm, &stock.Duopharm},
		{"ubipharm", input.Ubipharm, current.Ubipharm, &stock.Ubipharm},
		{"laborex", input.Laborex, current.Laborex, &stock.Laborex},
		{"sodipharm", input.Sodipharm, current.Sodipharm, &stock.Sodipharm},
	}
	for _, counter := range counters {
		trimmed := strings.TrimSpace(counter.raw)
		if trimmed == "" {
			*counter.target = counter.current
			continue
		}
		value, err := strconv.Atoi(trimmed)
		if err != nil || value < 0 {
			return models.Product{}, fmt.Errorf("%w: %s", ErrStockInvalid, counter.name)
		}
		*counter.target = value
	}

	if err := service.products.UpdateStock(product.ID, stock); err != nil {
		return models.Product{}, fmt.Errorf("update stock: %w", err)
	}
	product.StockDuopharm = stock.Duopharm
	product.StockUbipharm = stock.Ubipharm
	product.StockLaborex = stock.Laborex
	product.StockSodipharm = stock.Sodipharm
	return product, nil
}
