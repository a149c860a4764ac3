package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// AuthRepository defines persistence operations for principals.
type AuthRepository interface {
	Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
	FindByEmail(ctx context.Context, email string) (*domain.Principal, error)
	Count(ctx context.Context) (int64, error)
}

// TokenVerifier checks a bearer credential and returns the verified claims.
type TokenVerifier interface {
	Verify(token string) (*domain.TokenClaims, error)
}

// RegisterInput carries all data needed to register a principal.
// SecretKey is required once any principal already exists.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=admin viewer"`
	SecretKey string `json:"admin_secret_key,omitempty"`
}

// AuthResult is returned by both register and login.
type AuthResult struct {
	Token     string            `json:"token"`
	Principal *domain.Principal `json:"user"`
}

// AuthService defines the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
