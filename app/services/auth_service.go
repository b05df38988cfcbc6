package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/app/repositories"
	"github.com/artcocktail/artcocktail/pkg/auth"
)

// AuthService implements registration, login and profile reads.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account with the "user" role and returns it together
// with a fresh token. Emails are lowercased before the uniqueness check, so
// Alice@example.com and alice@example.com are the same account.
func (s *AuthService) Register(name, email, password string) (models.User, string, error) {
	email = normalizeEmail(email)

	if _, err := s.users.FindByEmail(email); err == nil {
		return models.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", fmt.Errorf("auth: lookup email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hash,
		Role:     models.RoleUser, // never taken from the client
	}
	if err := s.users.Create(&user); err != nil {
		// A concurrent registration can slip past the lookup above; the unique
		// index on email is the real guard.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, "", ErrEmailTaken
		}
		return models.User{}, "", fmt.Errorf("auth: create user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("auth: issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", fmt.Errorf("auth: lookup email: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", fmt.Errorf("auth: issue token: %w", err)
	}
	return user, token, nil
}

// Profile returns the user row for an authenticated id.
func (s *AuthService) Profile(userID uint) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("auth: load profile: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
