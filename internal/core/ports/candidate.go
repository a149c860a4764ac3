package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// CandidateFilter narrows a candidate listing. Filters are mutually
// exclusive in priority order: JobOpeningID > InterviewStage > FinalStatus.
type CandidateFilter struct {
	JobOpeningID   string
	InterviewStage string
	FinalStatus    string
}

// CandidateRepository defines persistence operations for candidates.
// Listings sort by application time descending.
type CandidateRepository interface {
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	FindByID(ctx context.Context, id string) (*domain.Candidate, error)
	List(ctx context.Context, filter CandidateFilter, page PageRequest) ([]*domain.Candidate, int64, error)
	Update(ctx context.Context, c *domain.Candidate) error
	Delete(ctx context.Context, id string) error
}

// CandidateInput carries all writable candidate fields.
type CandidateInput struct {
	Name            string  `json:"name" validate:"required,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone,omitempty" validate:"max=15"`
	ResumeURL       string  `json:"resume_url,omitempty"`
	LinkedinURL     string  `json:"linkedin_url,omitempty"`
	CurrentCompany  string  `json:"current_company,omitempty" validate:"max=100"`
	TotalExperience float64 `json:"total_experience,omitempty"`
	Skills          string  `json:"skills,omitempty"`
	InterviewStage  string  `json:"interview_stage,omitempty" validate:"omitempty,oneof=screening technical hr final offered rejected"`
	FinalStatus     string  `json:"final_status,omitempty" validate:"omitempty,oneof=in-progress selected rejected offered joined"`
	HRNotes         string  `json:"hr_notes,omitempty"`
	JobOpeningID    string  `json:"job_opening_id" validate:"required"`
}

// CandidateService defines use-case operations for candidates.
type CandidateService interface {
	Create(ctx context.Context, input CandidateInput) (*domain.Candidate, error)
	Get(ctx context.Context, id string) (*domain.Candidate, error)
	List(ctx context.Context, filter CandidateFilter, page PageRequest) (Page[*domain.Candidate], error)
	Update(ctx context.Context, id string, input CandidateInput) (*domain.Candidate, error)
	UpdateInterviewStage(ctx context.Context, id, stage string) (*domain.Candidate, error)
	UpdateHRNotes(ctx context.Context, id, notes string) (*domain.Candidate, error)
	Delete(ctx context.Context, id string) error
}
