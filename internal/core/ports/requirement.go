package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// RequirementFilter narrows a resource requirement listing. ClientID takes
// precedence over Status when both are supplied.
type RequirementFilter struct {
	ClientID string
	Status   string
}

// RequirementRepository defines persistence operations for resource requirements.
type RequirementRepository interface {
	Create(ctx context.Context, r *domain.ResourceRequirement) (*domain.ResourceRequirement, error)
	FindByID(ctx context.Context, id string) (*domain.ResourceRequirement, error)
	List(ctx context.Context, filter RequirementFilter, page PageRequest) ([]*domain.ResourceRequirement, int64, error)
	ListOpen(ctx context.Context) ([]*domain.ResourceRequirement, error)
	Update(ctx context.Context, r *domain.ResourceRequirement) error
	Delete(ctx context.Context, id string) error
}

// RequirementInput carries all writable resource requirement fields.
type RequirementInput struct {
	Role            string `json:"role" validate:"required,max=100"`
	Description     string `json:"description,omitempty"`
	ClientID        string `json:"client_id" validate:"required"`
	ProjectName     string `json:"project_name,omitempty" validate:"max=200"`
	RequiredCount   int    `json:"required_count,omitempty"`
	FulfilledCount  int    `json:"fulfilled_count,omitempty"`
	SkillsRequired  string `json:"skills_required,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty" validate:"max=50"`
	Location        string `json:"location,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=open fulfilled partially_fulfilled closed on-hold"`
	Priority        string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Notes           string `json:"notes,omitempty"`
}

// RequirementService defines use-case operations for resource requirements.
type RequirementService interface {
	Create(ctx context.Context, input RequirementInput) (*domain.ResourceRequirement, error)
	Get(ctx context.Context, id string) (*domain.ResourceRequirement, error)
	List(ctx context.Context, filter RequirementFilter, page PageRequest) (Page[*domain.ResourceRequirement], error)
	ListOpen(ctx context.Context) ([]*domain.ResourceRequirement, error)
	Update(ctx context.Context, id string, input RequirementInput) (*domain.ResourceRequirement, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.ResourceRequirement, error)
	Delete(ctx context.Context, id string) error
}
