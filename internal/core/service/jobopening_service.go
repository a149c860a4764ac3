package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type JobOpeningService struct {
	repo      ports.JobOpeningRepository
	companies ports.CompanyRepository
	logger    zerolog.Logger
}

func NewJobOpeningService(repo ports.JobOpeningRepository, companies ports.CompanyRepository, logger zerolog.Logger) *JobOpeningService {
	return &JobOpeningService{repo: repo, companies: companies, logger: logger}
}

func (s *JobOpeningService) Create(ctx context.Context, input ports.JobOpeningInput) (*domain.JobOpening, error) {
	now := time.Now().UTC()
	opening := &domain.JobOpening{CreatedAt: now}
	if err := s.applyInput(ctx, opening, input, now); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, opening)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("job_opening", "create").Inc()
	s.logger.Info().Str("job_opening_id", created.ID).Msg("job opening created")
	return created, nil
}

func (s *JobOpeningService) Get(ctx context.Context, id string) (*domain.JobOpening, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobOpeningService) List(ctx context.Context, filter ports.JobOpeningFilter, page ports.PageRequest) (ports.Page[*domain.JobOpening], error) {
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.JobOpening]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return ports.Page[*domain.JobOpening]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

func (s *JobOpeningService) Update(ctx context.Context, id string, input ports.JobOpeningInput) (*domain.JobOpening, error) {
	opening, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyInput(ctx, opening, input, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, opening); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("job_opening", "update").Inc()
	s.logger.Info().Str("job_opening_id", opening.ID).Msg("job opening updated")
	return opening, nil
}

// Delete removes the opening and cascades to its candidates.
func (s *JobOpeningService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("job_opening", "delete").Inc()
	s.logger.Info().Str("job_opening_id", id).Msg("job opening deleted with candidates")
	return nil
}

func (s *JobOpeningService) ToggleStatus(ctx context.Context, id string) (*domain.JobOpening, error) {
	opening, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := opening.ToggleStatus(); err != nil {
		return nil, err
	}
	opening.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, opening); err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_opening_id", id).Str("status", string(opening.Status)).Msg("job opening status toggled")
	return opening, nil
}

// applyInput maps the request onto the opening. A non-empty company id
// must resolve before the mutation proceeds.
func (s *JobOpeningService) applyInput(ctx context.Context, opening *domain.JobOpening, input ports.JobOpeningInput, now time.Time) error {
	if input.CompanyID != "" {
		if _, err := s.companies.FindByID(ctx, input.CompanyID); err != nil {
			return err
		}
	}

	status := domain.JobOpeningStatus(input.Status)
	if input.Status == "" {
		status = domain.JobOpen
	}
	if !status.Valid() {
		return domain.NewValidation("status", "must be one of: open, closed, on-hold")
	}

	opening.Title = input.Title
	opening.Description = input.Description
	opening.Department = input.Department
	opening.Location = input.Location
	opening.EmploymentType = input.EmploymentType
	opening.ExperienceLevel = input.ExperienceLevel
	opening.SalaryRange = input.SalaryRange
	opening.Requirements = input.Requirements
	opening.Responsibilities = input.Responsibilities
	opening.Status = status
	opening.OpeningsCount = input.OpeningsCount
	if opening.OpeningsCount == 0 {
		opening.OpeningsCount = 1
	}
	if opening.OpeningsCount < 1 {
		return domain.NewValidation("openings_count", "must be at least 1")
	}
	opening.CompanyID = input.CompanyID
	opening.UpdatedAt = now
	return nil
}
