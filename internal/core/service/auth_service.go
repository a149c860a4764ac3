package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// AuthService implements registration and login. The first principal can
// register without credentials; once any principal exists, further
// registrations must present the operator secret key.
type AuthService struct {
	repo        ports.AuthRepository
	tokens      *TokenService
	adminSecret string
	logger      zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens *TokenService, adminSecret string, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, adminSecret: adminSecret, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		if input.SecretKey == "" || input.SecretKey != s.adminSecret {
			return nil, domain.ErrInvalidSecretKey
		}
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailRegistered
	}

	role := input.Role
	if role == "" {
		role = domain.RoleAdmin
	}
	if !domain.ValidRole(role) {
		return nil, domain.NewValidation("role", "must be one of: admin, viewer")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	principal := &domain.Principal{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, principal)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Email, created.Role)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("principal_id", created.ID).Str("role", created.Role).Msg("principal registered")

	return &ports.AuthResult{Token: token, Principal: created}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	principal, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(principal.ID, principal.Email, principal.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Token: token, Principal: principal}, nil
}
