package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/security"
)

var ErrUsernameTaken = errors.New("username already registered")

type AuthUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	// FindByUsername reports found=false for an unknown username.
	FindByUsername(username string) (models.User, bool, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with default work settings.
func (service *AuthService) Register(usernameRaw string, password string) (models.User, error) {
	username, err := NormalizeUsername(usernameRaw)
	if err != nil {
		return models.User{}, &ValidationError{Field: "username", Err: err}
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, &ValidationError{Field: "password", Err: err}
	}

	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := models.NewUser(username, hash)
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate checks credentials and hides whether the username exists.
func (service *AuthService) Authenticate(usernameRaw string, passwordRaw string) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, found, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found || security.ComparePassword(user.PasswordHash, password) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
