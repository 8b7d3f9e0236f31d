package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/prospecta/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUnknownRole   = errors.New("unknown role")
	ErrUserNotFound  = errors.New("user not found")
)

type AuthUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

type NewUserInput struct {
	Username string
	Password string
	Role     string
	Project  string
	Zone     string
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate returns ErrAuthCredentialsInvalid for unknown users and wrong
// passwords alike.
func (service *AuthService) Authenticate(usernameRaw string, passwordRaw string) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByUsername(username)
	if err != nil {
		if isRecordNotFound(err) {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) CreateUser(input NewUserInput) (models.User, error) {
	username := NormalizeUsername(input.Username)
	if username == "" {
		return models.User{}, ErrUsernameInvalid
	}
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if !models.IsKnownRole(role) {
		return models.User{}, ErrUnknownRole
	}
	project := strings.ToLower(strings.TrimSpace(input.Project))
	if !models.IsKnownProject(project) {
		return models.User{}, ErrUnknownProject
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         role,
		Zone:         strings.TrimSpace(input.Zone),
		Project:      project,
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (service *AuthService) SetPassword(usernameRaw string, password string) (models.User, error) {
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}
	user, err := service.users.FindByUsername(strings.TrimSpace(usernameRaw))
	if err != nil {
		if isRecordNotFound(err) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return models.User{}, fmt.Errorf("update password: %w", err)
	}
	user.PasswordHash = string(passwordHash)
	return user, nil
}
