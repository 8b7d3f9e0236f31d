package db

import (
	"github.com/terraincognita07/prospecta/internal/models"
	"gorm.io/gorm"
)

type PlanningRepository struct {
	database *gorm.DB
}

func NewPlanningRepository(database *gorm.DB) *PlanningRepository {
	return &PlanningRepository{database: database}
}

func (repo *PlanningRepository) Create(planning *models.Planning) error {
	return repo.database.Create(planning).Error
}

func (repo *PlanningRepository) FindByID(planningID uint) (models.Planning, error) {
	var planning models.Planning
	if err := repo.database.Preload("Commercial").First(&planning, planningID).Error; err != nil {
		return models.Planning{}, err
	}
	return planning, nil
}

func (repo *PlanningRepository) ListByCommercial(commercialID uint) ([]models.Planning, error) {
	plannings := make([]models.Planning, 0)
	if err := repo.database.
		Where("commercial_id = ?", commercialID).
		Order("week_start DESC, id DESC").
		Find(&plannings).Error; err != nil {
		return nil, err
	}
	return plannings, nil
}

