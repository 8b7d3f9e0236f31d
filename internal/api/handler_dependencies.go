package api

import (
	"github.com/terraincognita07/prospecta/internal/db"
	"github.com/terraincognita07/prospecta/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	if database == nil {
		return handler
	}
	handler.repositories = db.NewRepositories(database)
	handler.buildServices()
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	if handler.authService == nil {
		handler.buildServices()
	}
}

func (handler *Handler) buildServices() {
	repositories := handler.repositories
	handler.authService = services.NewAuthService(repositories.Users)
	handler.setupService = services.NewSetupService(repositories.Users)
	handler.commercialService = services.NewCommercialService(repositories.Users)
	handler.prospectionService = services.NewProspectionService(repositories.Prospections)
	handler.planningService = services.NewPlanningService(repositories.Plannings)
	handler.revenueService = services.NewRevenueService(repositories.Sales)
	handler.rankingService = services.NewRankingService(repositories.Prospections)
	handler.salesService = services.NewSalesService(repositories.Products, repositories.Sales)
	handler.exportService = services.NewExportService(repositories.Prospections)
}
