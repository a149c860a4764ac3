package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// JobOpeningFilter narrows a job opening listing. Status and Department
// combine; CompanyID takes precedence over both when supplied.
type JobOpeningFilter struct {
	CompanyID  string
	Status     string
	Department string
}

// JobOpeningRepository defines persistence operations for job openings.
type JobOpeningRepository interface {
	Create(ctx context.Context, j *domain.JobOpening) (*domain.JobOpening, error)
	FindByID(ctx context.Context, id string) (*domain.JobOpening, error)
	List(ctx context.Context, filter JobOpeningFilter, page PageRequest) ([]*domain.JobOpening, int64, error)
	Update(ctx context.Context, j *domain.JobOpening) error
	// DeleteCascade removes the opening together with its candidates as
	// one atomic unit.
	DeleteCascade(ctx context.Context, id string) error
}

// JobOpeningInput carries all writable job opening fields.
type JobOpeningInput struct {
	Title            string `json:"title" validate:"required,max=200"`
	Description      string `json:"description,omitempty"`
	Department       string `json:"department,omitempty" validate:"max=100"`
	Location         string `json:"location,omitempty" validate:"max=200"`
	EmploymentType   string `json:"employment_type,omitempty" validate:"max=50"`
	ExperienceLevel  string `json:"experience_level,omitempty" validate:"max=50"`
	SalaryRange      string `json:"salary_range,omitempty" validate:"max=100"`
	Requirements     string `json:"requirements,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
	Status           string `json:"status,omitempty" validate:"omitempty,oneof=open closed on-hold"`
	OpeningsCount    int    `json:"openings_count,omitempty"`
	CompanyID        string `json:"company_id,omitempty"`
}

// JobOpeningService defines use-case operations for job openings.
type JobOpeningService interface {
	Create(ctx context.Context, input JobOpeningInput) (*domain.JobOpening, error)
	Get(ctx context.Context, id string) (*domain.JobOpening, error)
	List(ctx context.Context, filter JobOpeningFilter, page PageRequest) (Page[*domain.JobOpening], error)
	Update(ctx context.Context, id string, input JobOpeningInput) (*domain.JobOpening, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*domain.JobOpening, error)
}
