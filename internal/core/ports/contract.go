package ports

import (
	"context"
	"time"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// ContractFilter narrows a contract listing. ClientID takes precedence
// over Status when both are supplied.
type ContractFilter struct {
	ClientID string
	Status   string
}

// ContractRepository defines persistence operations for contracts.
type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	FindByID(ctx context.Context, id string) (*domain.Contract, error)
	List(ctx context.Context, filter ContractFilter, page PageRequest) ([]*domain.Contract, int64, error)
	// FindExpiring returns contracts whose end date falls within [from, to].
	FindExpiring(ctx context.Context, from, to time.Time) ([]*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	Delete(ctx context.Context, id string) error
}

// ContractInput carries all writable contract fields.
type ContractInput struct {
	Name           string  `json:"name" validate:"required,max=200"`
	ContractNumber string  `json:"contract_number,omitempty" validate:"max=50"`
	Description    string  `json:"description,omitempty"`
	ClientID       string  `json:"client_id" validate:"required"`
	StartDate      string  `json:"start_date" validate:"required"`
	EndDate        string  `json:"end_date" validate:"required"`
	ContractValue  float64 `json:"contract_value,omitempty"`
	Currency       string  `json:"currency,omitempty" validate:"max=10"`
	Status         string  `json:"status,omitempty" validate:"omitempty,oneof=active completed terminated expired"`
	PaymentTerms   string  `json:"payment_terms,omitempty" validate:"max=100"`
	DocumentURL    string  `json:"document_url,omitempty"`
	Terms          string  `json:"terms,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// ContractService defines use-case operations for contracts.
type ContractService interface {
	Create(ctx context.Context, input ContractInput) (*domain.Contract, error)
	Get(ctx context.Context, id string) (*domain.Contract, error)
	List(ctx context.Context, filter ContractFilter, page PageRequest) (Page[*domain.Contract], error)
	ListExpiring(ctx context.Context, days int) ([]*domain.Contract, error)
	Update(ctx context.Context, id string, input ContractInput) (*domain.Contract, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Contract, error)
	Delete(ctx context.Context, id string) error
}
