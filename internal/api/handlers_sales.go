package api

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/prospecta/internal/models"
	"github.com/terraincognita07/prospecta/internal/services"
)

type salesPayload struct {
	Date         string                    `json:"date"`
	CommercialID uint                      `json:"commercial_id"`
	Lines        map[string]salesLineInput `json:"lines"`
}

type salesLineInput struct {
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

func salesPath(brand string) string {
	return "/sales/" + brand
}

func (handler *Handler) ShowSalesForm(c *fiber.Ctx) error {
	user, err := mustCurrentUser(c)
	if err != nil {
		return err
	}

	handler.ensureDependencies()
	brand, products, err := handler.salesService.Catalog(c.Params("brand"))
	if err != nil {
		if errors.Is(err, services.ErrUnknownBrand) {
			return handler.respondWithFlashError(c, fiber.StatusNotFound, err.Error(), postLoginRedirectPath(user))
		}
		return err
	}

	sales, err := handler.salesService.ListForCommercial(user.ID, brand.Code)
	if err != nil {
		return err
	}

	productNames := make(map[uint]string, len(products))
	for _, product := range products {
		productNames[product.ID] = product.Name
	}

	commercials := []models.User{}
	if user.IsAdmin() {
		commercials, err = handler.commercialService.List(brand.Project)
		if err != nil {
			return err
		}
	}

	return handler.renderOrJSON(c, "sales",
		fiber.Map{"brand": brand, "products": products, "sales": sales},
		fiber.Map{
			"Title":        localizedPageTitle(currentMessages(c), "meta.title.sales", "Prospecta | Ventes"),
			"Brand":        brand,
			"Products":     products,
			"Sales":        sales,
			"ProductNames": productNames,
			"SalesRevenue": services.SalesRevenue(sales),
			"Commercials":  commercials,
			"Today":        services.FormatDay(handler.today()),
		},
	)
}

// RecordSales stores one submission of the brand's sales form. Commercials
// always record for themselves; admins may attribute the sales to a commercial.
func (handler *Handler) RecordSales(c *fiber.Ctx) error {
	user, err := mustCurrentUser(c)
	if err != nil {
		return err
	}

	brandCode := strings.TrimSpace(c.Params("brand"))
	handler.ensureDependencies()
	_, products, err := handler.salesService.Catalog(brandCode)
	if err != nil {
		if errors.Is(err, services.ErrUnknownBrand) {
			return handler.respondWithFlashError(c, fiber.StatusNotFound, err.Error(), postLoginRedirectPath(user))
		}
		return err
	}

	input, err := parseSalesEntryInput(c, products)
	if err != nil {
		return handler.respondWithFlashError(c, fiber.StatusBadRequest, "invalid input", salesPath(brandCode))
	}
	input.Brand = brandCode

	commercialID, err := handler.resolveSalesCommercial(user, input.CommercialID)
	if err != nil {
		return handler.respondWithFlashError(c, fiber.StatusBadRequest, err.Error(), salesPath(brandCode))
	}
	input.CommercialID = commercialID

	sales, err := handler.salesService.RecordSales(input)
	if err != nil {
		status := fiber.StatusBadRequest
		if !isSalesValidationError(err) {
			status = fiber.StatusInternalServerError
			slog.Error("record sales", "brand", brandCode, "user_id", user.ID, "error", err)
		}
		return handler.respondWithFlashError(c, status, err.Error(), salesPath(brandCode))
	}

	slog.Info("sales recorded", "brand", brandCode, "commercial_id", commercialID, "count", len(sales))
	return handler.respondWithFlashSuccess(c, fiber.StatusCreated,
		fiber.Map{"ok": true, "count": len(sales), "revenue": services.SalesRevenue(sales)},
		"flash.saved",
		salesPath(brandCode),
	)
}

func (handler *Handler) UpdateStock(c *fiber.Ctx) error {
	brandCode := strings.TrimSpace(c.Params("brand"))
	productID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || productID == 0 {
		return handler.respondWithFlashError(c, fiber.StatusNotFound, services.ErrProductNotFound.Error(), salesPath(brandCode))
	}

	form := stockForm{}
	if err := c.BodyParser(&form); err != nil {
		return handler.respondWithFlashError(c, fiber.StatusBadRequest, "invalid input", salesPath(brandCode))
	}

	handler.ensureDependencies()
	product, err := handler.salesService.UpdateStock(brandCode, uint(productID), services.StockInput{
		Duopharm:  form.Duopharm,
		Ubipharm:  form.Ubipharm,
		Laborex:   form.Laborex,
		Sodipharm: form.Sodipharm,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownBrand), errors.Is(err, services.ErrProductNotFound):
			return handler.respondWithFlashError(c, fiber.StatusNotFound, err.Error(), salesPath(brandCode))
		case errors.Is(err, services.ErrStockInvalid):
			return handler.respondWithFlashError(c, fiber.StatusBadRequest, err.Error(), salesPath(brandCode))
		default:
			slog.Error("update stock", "brand", brandCode, "product_id", productID, "error", err)
			return handler.respondWithFlashError(c, fiber.StatusInternalServerError, err.Error(), salesPath(brandCode))
		}
	}

	slog.Info("stock updated", "brand", brandCode, "product_id", product.ID, "total", product.TotalStock())
	return handler.respondWithFlashSuccess(c, fiber.StatusOK,
		fiber.Map{"ok": true, "product": product, "total_stock": product.TotalStock()},
		"flash.saved",
		salesPath(brandCode),
	)
}

func (handler *Handler) resolveSalesCommercial(user *models.User, requestedID uint) (uint, error) {
	if !user.IsAdmin() || requestedID == 0 || requestedID == user.ID {
		return user.ID, nil
	}
	commercial, err := handler.commercialService.FindCommercial(requestedID)
	if err != nil {
		return 0, err
	}
	return commercial.ID, nil
}

// parseSalesEntryInput reads quantity_<id> and price_<id> form fields for each
// catalog product, or the equivalent JSON lines keyed by product id.
func parseSalesEntryInput(c *fiber.Ctx, products []models.Product) (services.SalesEntryInput, error) {
	input := services.SalesEntryInput{Lines: make(map[uint]services.SaleLineInput, len(products))}

	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
		payload := salesPayload{}
		if err := c.BodyParser(&payload); err != nil {
			return services.SalesEntryInput{}, err
		}
		input.SaleDate = payload.Date
		input.CommercialID = payload.CommercialID
		for rawID, line := range payload.Lines {
			productID, err := strconv.ParseUint(rawID, 10, 64)
			if err != nil {
				return services.SalesEntryInput{}, err
			}
			input.Lines[uint(productID)] = services.SaleLineInput{Quantity: line.Quantity, Price: line.Price}
		}
		return input, nil
	}

	input.SaleDate = c.FormValue("date")
	if rawCommercial := strings.TrimSpace(c.FormValue("commercial_id")); rawCommercial != "" {
		commercialID, err := strconv.ParseUint(rawCommercial, 10, 64)
		if err != nil {
			return services.SalesEntryInput{}, err
		}
		input.CommercialID = uint(commercialID)
	}
	for _, product := range products {
		key := strconv.FormatUint(uint64(product.ID), 10)
		quantity := c.FormValue("quantity_" + key)
		price := c.FormValue("price_" + key)
		if strings.TrimSpace(quantity) == "" && strings.TrimSpace(price) == "" {
			continue
		}
		input.Lines[product.ID] = services.SaleLineInput{Quantity: quantity, Price: price}
	}
	return input, nil
}

func isSalesValidationError(err error) bool {
	return errors.Is(err, services.ErrSaleDateRequired) ||
		errors.Is(err, services.ErrSaleQuantityInvalid) ||
		errors.Is(err, services.ErrSalePriceInvalid) ||
		errors.Is(err, services.ErrSalePriceNegative) ||
		errors.Is(err, services.ErrInvalidDate) ||
		errors.Is(err, services.ErrUnknownBrand)
}
