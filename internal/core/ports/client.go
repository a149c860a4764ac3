package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// ClientFilter narrows a client listing. Search takes precedence over
// Status when both are supplied.
type ClientFilter struct {
	Search string
	Status string
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter, page PageRequest) ([]*domain.Client, int64, error)
	ListActive(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	// DeleteCascade removes the client together with its contracts and
	// resource requirements as one atomic unit.
	DeleteCascade(ctx context.Context, id string) error
}

// ClientInput carries all writable client fields.
type ClientInput struct {
	Name          string `json:"name" validate:"required,max=200"`
	CompanyName   string `json:"company_name,omitempty" validate:"max=200"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty" validate:"max=15"`
	Address       string `json:"address,omitempty"`
	Industry      string `json:"industry,omitempty" validate:"max=100"`
	WebsiteURL    string `json:"website_url,omitempty"`
	ContactPerson string `json:"contact_person,omitempty" validate:"max=100"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=active inactive prospect"`
	Notes         string `json:"notes,omitempty"`
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter, page PageRequest) (Page[*domain.Client], error)
	ListActive(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id string, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*domain.Client, error)
}
