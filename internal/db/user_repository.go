package db

import (
	"github.com/terraincognita07/prospecta/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountByRole(role string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}

// ListCommercials returns commercial accounts ordered by username. An empty
// project lists every commercial.
func (repo *UserRepository) ListCommercials(project string) ([]models.User, error) {
	query := repo.database.Where("role = ?", models.RoleCommercial)
	if project != "" {
		query = query.Where("project = ?", project)
	}

	users := make([]models.User, 0)
	if err := query.Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListZones returns the distinct non-empty zones of commercial accounts.
func (repo *UserRepository) ListZones() ([]string, error) {
	zones := make([]string, 0)
	if err := repo.database.Model(&models.User{}).
		Where("role = ? AND zone <> ''", models.RoleCommercial).
		Distinct().
		Order("zone ASC").
		Pluck("zone", &zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}
