package services

import (
	"context"

	"github.com/pkg/errors"

	"qr-attendance/app/database"
	"qr-attendance/app/models"
)

// ErrAuthenticationFailed is returned for unknown emails and wrong passwords
// alike.
var ErrAuthenticationFailed = errors.New("invalid email or password")

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type credentials struct {
	Email    string `validate:"required,max=120"`
	Password string `validate:"required"`
}

type AuthService struct {
	repo UserRepository
}

func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Login looks the user up by exact email and checks the password. There is no
// lockout or rate limiting.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return nil, ErrAuthenticationFailed
	}
	if !storable(email) {
		return nil, ErrAuthenticationFailed
	}

	user, err := svc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, errors.Wrap(err, "login")
	}

	if !CheckPasswordHash(password, user.Password) {
		return nil, ErrAuthenticationFailed
	}
	return user, nil
}
