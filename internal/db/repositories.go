package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Prospections *ProspectionRepository
	Plannings    *PlanningRepository
	Products     *ProductRepository
	Sales        *SaleRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Prospections: NewProspectionRepository(database),
		Plannings:    NewPlanningRepository(database),
		Products:     NewProductRepository(database),
		Sales:        NewSaleRepository(database),
	}
}
