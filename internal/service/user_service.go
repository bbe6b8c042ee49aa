package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lukpoex/next-commerce/internal/auth"
	"github.com/lukpoex/next-commerce/internal/config"
	"github.com/lukpoex/next-commerce/internal/datamodels/user"
)

// UserService handles registration and login; it issues the bearer tokens
// the rest of the API consumes as a role capability.
type UserService struct {
	repo user.Repository
	jwt  *config.JWTConfig
}

// NewUserService wires the user service.
func NewUserService(repo user.Repository, jwt *config.JWTConfig) *UserService {
	return &UserService{repo: repo, jwt: jwt}
}

func hashPassword(raw, salt string) string {
	h := sha256.Sum256([]byte(raw + salt))
	return hex.EncodeToString(h[:])
}

func newSalt() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Register creates a regular user account.
func (s *UserService) Register(ctx context.Context, email, password string) (*user.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	u := &user.User{
		Email: email,
		Salt:  newSalt(),
		Role:  user.RoleUser,
	}
	u.Password = hashPassword(password, u.Salt)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login checks credentials and returns a signed bearer token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errors.New("invalid email or password")
	}
	if err != nil {
		return "", err
	}
	if hashPassword(password, u.Salt) != u.Password {
		return "", errors.New("invalid email or password")
	}
	return auth.GenerateToken(s.jwt, u.ID, u.Email, u.Role)
}
