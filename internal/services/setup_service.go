package services

import "github.com/terraincognita07/prospecta/internal/models"

type SetupUserRepository interface {
	CountByRole(role string) (int64, error)
}

// SetupStatus tells the welcome page whether the roster still has to be created.
type SetupStatus struct {
	Admins      int64 `json:"admins"`
	Commercials int64 `json:"commercials"`
}

func (status SetupStatus) RequiresInitialSetup() bool {
	return status.Admins == 0
}

type SetupService struct {
	users SetupUserRepository
}

func NewSetupService(users SetupUserRepository) *SetupService {
	return &SetupService{users: users}
}

func (service *SetupService) Status() (SetupStatus, error) {
	admins, err := service.users.CountByRole(models.RoleAdmin)
	if err != nil {
		return SetupStatus{}, err
	}
	commercials, err := service.users.CountByRole(models.RoleCommercial)
	if err != nil {
		return SetupStatus{}, err
	}
	return SetupStatus{Admins: admins, Commercials: commercials}, nil
}
