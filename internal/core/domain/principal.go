package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Principal models an administrative identity able to authenticate.
type Principal struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	PrincipalID string
	Email       string
	Role        string
}

// ValidRole reports whether role is one of the known principal roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleViewer
}
