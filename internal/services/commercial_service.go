package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/prospecta/internal/models"
)

var ErrCommercialNotFound = errors.New("commercial not found")

type CommercialUserReader interface {
	FindByID(userID uint) (models.User, error)
	FindByUsername(username string) (models.User, error)
	ListCommercials(project string) ([]models.User, error)
	ListZones() ([]string, error)
}

type CommercialService struct {
	users CommercialUserReader
}

func NewCommercialService(users CommercialUserReader) *CommercialService {
	return &CommercialService{users: users}
}

func (service *CommercialService) FindByUsername(username string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, ErrCommercialNotFound
	}
	user, err := service.users.FindByUsername(username)
	if err != nil {
		if isRecordNotFound(err) {
			return models.User{}, ErrCommercialNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// FindCommercial loads a user by id and requires the commercial role.
func (service *CommercialService) FindCommercial(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if isRecordNotFound(err) {
			return models.User{}, ErrCommercialNotFound
		}
		return models.User{}, err
	}
	if !user.IsCommercial() {
		return models.User{}, ErrCommercialNotFound
	}
	return user, nil
}

// List returns commercials of project, or of every project when project is empty.
func (service *CommercialService) List(project string) ([]models.User, error) {
	if project != "" && !models.IsKnownProject(project) {
		return nil, ErrUnknownProject
	}
	return service.users.ListCommercials(project)
}

func (service *CommercialService) Zones() ([]string, error) {
	return service.users.ListZones()
}
