package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, page PageRequest) ([]*domain.Company, int64, error)
	Update(ctx context.Context, c *domain.Company) error
	Delete(ctx context.Context, id string) error
}

// CompanyInput carries all writable company fields.
type CompanyInput struct {
	Name         string `json:"name" validate:"required,max=200"`
	LogoURL      string `json:"logo_url,omitempty"`
	WebsiteURL   string `json:"website_url,omitempty"`
	IsActive     *bool  `json:"is_active,omitempty"`
	DisplayOrder int    `json:"display_order,omitempty"`
}

// CompanyService defines use-case operations for companies.
type CompanyService interface {
	Create(ctx context.Context, input CompanyInput) (*domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, page PageRequest) (Page[*domain.Company], error)
	Update(ctx context.Context, id string, input CompanyInput) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
}
