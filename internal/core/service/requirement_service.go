package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type RequirementService struct {
	repo    ports.RequirementRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewRequirementService(repo ports.RequirementRepository, clients ports.ClientRepository, logger zerolog.Logger) *RequirementService {
	return &RequirementService{repo: repo, clients: clients, logger: logger}
}

func (s *RequirementService) Create(ctx context.Context, input ports.RequirementInput) (*domain.ResourceRequirement, error) {
	now := time.Now().UTC()
	req := &domain.ResourceRequirement{CreatedAt: now}
	if err := s.applyInput(ctx, req, input, now); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("resource_requirement", "create").Inc()
	s.logger.Info().Str("requirement_id", created.ID).Str("client_id", created.ClientID).Msg("resource requirement created")
	return created, nil
}

func (s *RequirementService) Get(ctx context.Context, id string) (*domain.ResourceRequirement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RequirementService) List(ctx context.Context, filter ports.RequirementFilter, page ports.PageRequest) (ports.Page[*domain.ResourceRequirement], error) {
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.ResourceRequirement]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return ports.Page[*domain.ResourceRequirement]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

func (s *RequirementService) ListOpen(ctx context.Context) ([]*domain.ResourceRequirement, error) {
	return s.repo.ListOpen(ctx)
}

func (s *RequirementService) Update(ctx context.Context, id string, input ports.RequirementInput) (*domain.ResourceRequirement, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyInput(ctx, req, input, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("resource_requirement", "update").Inc()
	s.logger.Info().Str("requirement_id", req.ID).Msg("resource requirement updated")
	return req, nil
}

func (s *RequirementService) UpdateStatus(ctx context.Context, id, status string) (*domain.ResourceRequirement, error) {
	next := domain.RequirementStatus(status)
	if !next.Valid() {
		return nil, domain.NewValidation("status", "must be one of: open, fulfilled, partially_fulfilled, closed, on-hold")
	}

	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Status = next
	req.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().Str("requirement_id", id).Str("status", status).Msg("resource requirement status updated")
	return req, nil
}

func (s *RequirementService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("resource_requirement", "delete").Inc()
	s.logger.Info().Str("requirement_id", id).Msg("resource requirement deleted")
	return nil
}

func (s *RequirementService) applyInput(ctx context.Context, req *domain.ResourceRequirement, input ports.RequirementInput, now time.Time) error {
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return err
	}

	start, err := parseOptionalDate(input.StartDate, "start_date")
	if err != nil {
		return err
	}
	end, err := parseOptionalDate(input.EndDate, "end_date")
	if err != nil {
		return err
	}

	req.Role = input.Role
	req.Description = input.Description
	req.ClientID = input.ClientID
	req.ProjectName = input.ProjectName
	req.RequiredCount = input.RequiredCount
	if req.RequiredCount == 0 {
		req.RequiredCount = 1
	}
	req.FulfilledCount = input.FulfilledCount
	req.SkillsRequired = input.SkillsRequired
	req.ExperienceLevel = input.ExperienceLevel
	req.Location = input.Location
	req.StartDate = start
	req.EndDate = end
	req.Status = domain.RequirementStatus(input.Status)
	if input.Status == "" {
		req.Status = domain.RequirementOpen
	}
	req.Priority = domain.RequirementPriority(input.Priority)
	if input.Priority == "" {
		req.Priority = domain.PriorityMedium
	}
	req.Notes = input.Notes
	req.UpdatedAt = now

	return req.Validate()
}

func parseOptionalDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, domain.NewValidation(field, "must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}
