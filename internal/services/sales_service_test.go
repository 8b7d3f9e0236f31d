package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/prospecta/internal/models"
	"gorm.io/gorm"
)

type stubSaleProductReader struct {
	products     []models.Product
	updatedID    uint
	updatedStock models.ProductStock
	updateCalled bool
	listErr      error
}

func (stub *stubSaleProductReader) ListByBrand(brand string) ([]models.Product, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	result := make([]models.Product, 0, len(stub.products))
	for _, product := range stub.products {
		if product.Brand == brand {
			result = append(result, product)
		}
	}
	return result, nil
}

func (stub *stubSaleProductReader) FindByBrandAndID(brand string, productID uint) (models.Product, error) {
	for _, product := range stub.products {
		if product.Brand == brand && product.ID == productID {
			return product, nil
		}
	}
	return models.Product{}, gorm.ErrRecordNotFound
}

func (stub *stubSaleProductReader) UpdateStock(productID uint, stock models.ProductStock) error {
	stub.updateCalled = true
	stub.updatedID = productID
	stub.updatedStock = stock
	return nil
}

type stubSaleWriter struct {
	batches [][]models.Sale
	err     error
}

func (stub *stubSaleWriter) CreateBatch(sales []models.Sale) error {
	if stub.err != nil {
		return stub.err
	}
	batch := make([]models.Sale, len(sales))
	copy(batch, sales)
	stub.batches = append(stub.batches, batch)
	return nil
}

func (stub *stubSaleWriter) ListByCommercial(commercialID uint) ([]models.Sale, error) {
	result := make([]models.Sale, 0)
	for _, sale := range stub.written() {
		if sale.CommercialID == commercialID {
			result = append(result, sale)
		}
	}
	return result, nil
}

func (stub *stubSaleWriter) written() []models.Sale {
	result := make([]models.Sale, 0)
	for _, batch := range stub.batches {
		result = append(result, batch...)
	}
	return result
}

func newSalesServiceFixture() (*SalesService, *stubSaleProductReader, *stubSaleWriter) {
	products := &stubSaleProductReader{
		products: []models.Product{
			{ID: 1, Brand: models.BrandEricFavre, Name: "VITAMINE C", DefaultPrice: 7.5},
			{ID: 2, Brand: models.BrandEricFavre, Name: "MAGNESIUM", DefaultPrice: 4},
			{ID: 3, Brand: models.BrandGilbert, Name: "SERUM", DefaultPrice: 2, StockLaborex: 9},
		},
	}
	writer := &stubSaleWriter{}
	return NewSalesService(products, writer), products, writer
}

func TestRecordSalesSkipsZeroAndNegativeQuantities(t *testing.T) {
	service, _, writer := newSalesServiceFixture()

	sales, err := service.RecordSales(SalesEntryInput{
		Brand:        models.BrandEricFavre,
		CommercialID: 7,
		SaleDate:     "2024-03-05",
		Lines: map[uint]SaleLineInput{
			1: {Quantity: "0", Price: "7.5"},
			2: {Quantity: "-3", Price: ""},
		},
	})
	if err != nil {
		t.Fatalf("RecordSales() unexpected error: %v", err)
	}
	if len(sales) != 0 || len(writer.written()) != 0 {
		t.Fatalf("expected no sales, got %#v", writer.written())
	}
}

func TestRecordSalesCreatesOneSaleStampedWithDeclaredProject(t *testing.T) {
	service, _, writer := newSalesServiceFixture()

	sales, err := service.RecordSales(SalesEntryInput{
		Brand:        models.BrandEricFavre,
		CommercialID: 7,
		SaleDate:     "2024-03-05",
		Lines: map[uint]SaleLineInput{
			1: {Quantity: "2", Price: "7.5"},
			2: {Quantity: "", Price: "4"},
		},
	})
	if err != nil {
		t.Fatalf("RecordSales() unexpected error: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected exactly one sale, got %d", len(sales))
	}

	sale := writer.written()[0]
	if sale.Quantity != 2 || sale.Price != 7.5 || sale.ProductID != 1 {
		t.Fatalf("unexpected sale %#v", sale)
	}
	if sale.Project != models.ProjectNasmedic || sale.Brand != models.BrandEricFavre || sale.CommercialID != 7 {
		t.Fatalf("unexpected sale stamps %#v", sale)
	}
	if !sale.Date.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected sale date %s", sale.Date)
	}
	if SalesRevenue(sales) != 15 || sale.Revenue() != 15 {
		t.Fatalf("expected revenue 15, got %v", SalesRevenue(sales))
	}
}

func TestRecordSalesUsesDefaultPriceWhenEmpty(t *testing.T) {
	service, _, writer := newSalesServiceFixture()

	if _, err := service.RecordSales(SalesEntryInput{
		Brand:    models.BrandEricFavre,
		SaleDate: "2024-03-05",
		Lines:    map[uint]SaleLineInput{2: {Quantity: "3", Price: " "}},
	}); err != nil {
		t.Fatalf("RecordSales() unexpected error: %v", err)
	}
	if written := writer.written(); len(written) != 1 || written[0].Price != 4 {
		t.Fatalf("expected default price 4, got %#v", written)
	}
}

func TestRecordSalesAcceptsDecimalComma(t *testing.T) {
	service, _, writer := newSalesServiceFixture()

	if _, err := service.RecordSales(SalesEntryInput{
		Brand:    models.BrandEricFavre,
		SaleDate: "2024-03-05",
		Lines:    map[uint]SaleLineInput{1: {Quantity: "1", Price: "2,25"}},
	}); err != nil {
		t.Fatalf("RecordSales() unexpected error: %v", err)
	}
	if written := writer.written(); len(written) != 1 || written[0].Price != 2.25 {
		t.Fatalf("expected price 2.25, got %#v", written)
	}
}

func TestRecordSalesRejectsInvalidSubmissionsWithoutWriting(t *testing.T) {
	tests := []struct {
		name    string
		input   SalesEntryInput
		wantErr error
	}{
		{
			name:    "missing date",
			input:   SalesEntryInput{Brand: models.BrandEricFavre, Lines: map[uint]SaleLineInput{1: {Quantity: "1"}}},
			wantErr: ErrSaleDateRequired,
		},
		{
			name:    "malformed date",
			input:   SalesEntryInput{Brand: models.BrandEricFavre, SaleDate: "05/03/2024"},
			wantErr: ErrInvalidDate,
		},
		{
			name: "non numeric quantity",
			input: SalesEntryInput{Brand: models.BrandEricFavre, SaleDate: "2024-03-05", Lines: map[uint]SaleLineInput{
				1: {Quantity: "2", Price: "1"},
				2: {Quantity: "two", Price: "1"},
			}},
			wantErr: ErrSaleQuantityInvalid,
		},
		{
			name:    "non numeric price",
			input:   SalesEntryInput{Brand: models.BrandEricFavre, SaleDate: "2024-03-05", Lines: map[uint]SaleLineInput{1: {Quantity: "2", Price: "abc"}}},
			wantErr: ErrSalePriceInvalid,
		},
		{
			name:    "negative price",
			input:   SalesEntryInput{Brand: models.BrandEricFavre, SaleDate: "2024-03-05", Lines: map[uint]SaleLineInput{1: {Quantity: "2", Price: "-1"}}},
			wantErr: ErrSalePriceNegative,
		},
		{
			name:    "unknown brand",
			input:   SalesEntryInput{Brand: "acme", SaleDate: "2024-03-05"},
			wantErr: ErrUnknownBrand,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			service, _, writer := newSalesServiceFixture()
			_, err := service.RecordSales(testCase.input)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
			if len(writer.batches) != 0 {
				t.Fatalf("expected nothing written, got %#v", writer.batches)
			}
		})
	}
}

func TestRecordSalesIgnoresProductsOfOtherBrands(t *testing.T) {
	service, _, writer := newSalesServiceFixture()

	if _, err := service.RecordSales(SalesEntryInput{
		Brand:    models.BrandEricFavre,
		SaleDate: "2024-03-05",
		Lines:    map[uint]SaleLineInput{3: {Quantity: "5", Price: "1"}},
	}); err != nil {
		t.Fatalf("RecordSales() unexpected error: %v", err)
	}
	if len(writer.written()) != 0 {
		t.Fatalf("expected gilbert product to be ignored for eric favre, got %#v", writer.written())
	}
}

func TestRecordSalesWrapsWriterErrors(t *testing.T) {
	service, _, writer := newSalesServiceFixture()
	writer.err = errors.New("constraint failed")

	_, err := service.RecordSales(SalesEntryInput{
		Brand:    models.BrandEricFavre,
		SaleDate: "2024-03-05",
		Lines:    map[uint]SaleLineInput{1: {Quantity: "1"}},
	})
	if err == nil || !errors.Is(err, writer.err) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
}

func TestUpdateStock(t *testing.T) {
	service, products, _ := newSalesServiceFixture()

	product, err := service.UpdateStock(models.BrandGilbert, 3, StockInput{Duopharm: "4", Ubipharm: "0", Laborex: "", Sodipharm: "12"})
	if err != nil {
		t.Fatalf("UpdateStock() unexpected error: %v", err)
	}
	want := models.ProductStock{Duopharm: 4, Ubipharm: 0, Laborex: 9, Sodipharm: 12}
	if products.updatedStock != want || product.Stock() != want {
		t.Fatalf("expected stock %#v, got %#v", want, products.updatedStock)
	}

	products.updateCalled = false
	if _, err := service.UpdateStock(models.BrandGilbert, 3, StockInput{Duopharm: "-1"}); !errors.Is(err, ErrStockInvalid) {
		t.Fatalf("expected ErrStockInvalid, got %v", err)
	}
	if products.updateCalled {
		t.Fatal("expected negative stock to be rejected before writing")
	}
	if _, err := service.UpdateStock(models.BrandEricFavre, 3, StockInput{}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := service.UpdateStock("acme", 3, StockInput{}); !errors.Is(err, ErrUnknownBrand) {
		t.Fatalf("expected ErrUnknownBrand, got %v", err)
	}
}

func TestListForCommercialKeepsOneBrand(t *testing.T) {
	service, _, writer := newSalesServiceFixture()
	writer.batches = [][]models.Sale{{
		{ID: 1, Brand: models.BrandEricFavre, CommercialID: 7},
		{ID: 2, Brand: models.BrandGilbert, CommercialID: 7},
		{ID: 3, Brand: models.BrandEricFavre, CommercialID: 8},
	}}

	sales, err := service.ListForCommercial(7, models.BrandEricFavre)
	if err != nil {
		t.Fatalf("ListForCommercial() unexpected error: %v", err)
	}
	if len(sales) != 1 || sales[0].ID != 1 {
		t.Fatalf("expected only sale 1, got %#v", sales)
	}

	if _, err := service.ListForCommercial(7, "acme"); !errors.Is(err, ErrUnknownBrand) {
		t.Fatalf("expected ErrUnknownBrand, got %v", err)
	}
}
