package user

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	userRepo "gatherspace/database/repository/user"
	"gatherspace/models"
	"gatherspace/utils"
)

// AuthService authenticates users and issues session tokens.
type AuthService interface {
	Authenticate(email, password string) (string, *models.User, error)
}

// DefaultAuthService implements AuthService against the user repository.
type DefaultAuthService struct {
	Repo     userRepo.UserRepository
	TokenTTL time.Duration
}

func (s *DefaultAuthService) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.TokenTTL
}

// Authenticate verifies the credentials and returns a signed JWT plus the user.
func (s *DefaultAuthService) Authenticate(email, password string) (string, *models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}
	token, err := utils.GenerateToken(u.ID, u.Email, s.tokenTTL())
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, u, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
