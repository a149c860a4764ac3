package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// TokenService issues and verifies self-contained HS256 tokens. Expiry is
// the only way a token stops being valid short of rotating the secret;
// there is no revocation list (stateless verification by design).
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token carrying the principal's identity and an
// expiry of now + configured lifetime.
func (s *TokenService) Issue(principalID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": principalID,
		"email":   email,
		"role":    role,
		"sub":     email,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and integrity-checks a token, returning its claims.
// Any tampering, structural problem, algorithm mismatch, or expiry yields
// domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{PrincipalID: id, Email: email, Role: role}, nil
}
