package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type stubAuthRepo struct {
	principals map[string]*domain.Principal
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{principals: make(map[string]*domain.Principal)}
}

func (r *stubAuthRepo) Create(_ context.Context, p *domain.Principal) (*domain.Principal, error) {
	if _, ok := r.principals[p.Email]; ok {
		return nil, domain.ErrEmailRegistered
	}
	cp := *p
	cp.ID = "principal_" + p.Email
	r.principals[p.Email] = &cp
	return &cp, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.Principal, error) {
	p, ok := r.principals[email]
	if !ok {
		return nil, domain.NewNotFound("user", email)
	}
	return p, nil
}

func (r *stubAuthRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.principals)), nil
}

func newAuthService(repo ports.AuthRepository) *AuthService {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(repo, tokens, "operator-key", zerolog.Nop())
}

func TestAuthService_Register_Bootstrap(t *testing.T) {
	svc := newAuthService(newStubAuthRepo())

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "first@example.com",
		Password: "password123",
		Name:     "First Admin",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
	if result.Principal.Role != domain.RoleAdmin {
		t.Fatalf("expected default role admin, got %q", result.Principal.Role)
	}
}

func TestAuthService_Register_SecretRequiredAfterBootstrap(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "first@example.com", Password: "password123", Name: "First",
	}); err != nil {
		t.Fatalf("bootstrap register: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "second@example.com", Password: "password123", Name: "Second",
	})
	if !errors.Is(err, domain.ErrInvalidSecretKey) {
		t.Fatalf("expected ErrInvalidSecretKey without secret, got %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Email: "second@example.com", Password: "password123", Name: "Second", SecretKey: "wrong",
	})
	if !errors.Is(err, domain.ErrInvalidSecretKey) {
		t.Fatalf("expected ErrInvalidSecretKey with wrong secret, got %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "second@example.com", Password: "password123", Name: "Second", SecretKey: "operator-key",
	}); err != nil {
		t.Fatalf("register with correct secret: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "dup@example.com", Password: "password123", Name: "Dup",
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "dup@example.com", Password: "password123", Name: "Dup", SecretKey: "operator-key",
	})
	if !errors.Is(err, domain.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubAuthRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "x@example.com", Password: "password123", Name: "X", Role: "superuser",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubAuthRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo.principals["alice@example.com"] = &domain.Principal{
		ID:           "p1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	svc := newAuthService(repo)

	result, err := svc.Login(context.Background(), "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}

	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
