package db

import (
	"strings"

	"github.com/terraincognita07/prospecta/internal/models"
	"gorm.io/gorm"
)

type ProspectionRepository struct {
	database *gorm.DB
}

func NewProspectionRepository(database *gorm.DB) *ProspectionRepository {
	return &ProspectionRepository{database: database}
}

func (repo *ProspectionRepository) Create(prospection *models.Prospection) error {
	return repo.database.Create(prospection).Error
}

func (repo *ProspectionRepository) ListByCommercial(commercialID uint) ([]models.Prospection, error) {
	prospections := make([]models.Prospection, 0)
	if err := repo.database.
		Where("commercial_id = ?", commercialID).
		Order("date ASC, id ASC").
		Find(&prospections).Error; err != nil {
		return nil, err
	}
	return prospections, nil
}

// ListByProject returns the visits of commercials attached to project, newest first.
func (repo *ProspectionRepository) ListByProject(project string) ([]models.Prospection, error) {
	prospections := make([]models.Prospection, 0)
	if err := repo.database.
		Select("prospections.*").
		Joins("JOIN users ON users.id = prospections.commercial_id").
		Where("users.project = ?", project).
		Preload("Commercial").
		Order("prospections.date DESC, prospections.id DESC").
		Find(&prospections).Error; err != nil {
		return nil, err
	}
	return prospections, nil
}

// ListFiltered returns commercial visits matching every populated filter field.
// The to bound is inclusive of its whole day.
func (repo *ProspectionRepository) ListFiltered(filter models.ProspectionFilter) ([]models.Prospection, error) {
	query := repo.database.
		Select("prospections.*").
		Joins("JOIN users ON users.id = prospections.commercial_id").
		Where("users.role = ?", models.RoleCommercial)

	if filter.From != nil {
		query = query.Where("prospections.date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("prospections.date < ?", filter.To.AddDate(0, 0, 1))
	}
	if filter.CommercialID != 0 {
		query = query.Where("prospections.commercial_id = ?", filter.CommercialID)
	}
	if zone := strings.TrimSpace(filter.Zone); zone != "" {
		query = query.Where("users.zone = ?", zone)
	}
	if specialty := strings.TrimSpace(filter.Specialty); specialty != "" {
		query = query.Where("prospections.specialty = ?", specialty)
	}

	prospections := make([]models.Prospection, 0)
	if err := query.
		Preload("Commercial").
		Order("prospections.date DESC, prospections.id DESC").
		Find(&prospections).Error; err != nil {
		return nil, err
	}
	return prospections, nil
}

func (repo *ProspectionRepository) ListSpecialties() ([]string, error) {
	specialties := make([]string, 0)
	if err := repo.database.Model(&models.Prospection{}).
		Where("specialty <> ''").
		Distinct().
		Order("specialty ASC").
		Pluck("specialty", &specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

// TopCommercialsByVisits ranks commercials by visit count, ties broken by
// username. Commercials without visits are not ranked. An empty project ranks
// every commercial.
func (repo *ProspectionRepository) TopCommercialsByVisits(project string, limit int) ([]models.VisitCount, error) {
	query := repo.database.
		Table("users").
		Select("users.id AS user_id, users.username AS username, users.zone AS zone, COUNT(prospections.id) AS visits").
		Joins("JOIN prospections ON prospections.commercial_id = users.id").
		Where("users.role = ?", models.RoleCommercial)
	if project != "" {
		query = query.Where("users.project = ?", project)
	}

	rows := make([]models.VisitCount, 0)
	if err := query.
		Group("users.id, users.username, users.zone").
		Order("visits DESC, users.username ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
