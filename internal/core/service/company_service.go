package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type CompanyService struct {
	repo   ports.CompanyRepository
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, logger: logger}
}

func (s *CompanyService) Create(ctx context.Context, input ports.CompanyInput) (*domain.Company, error) {
	company := &domain.Company{
		Name:         input.Name,
		LogoURL:      input.LogoURL,
		WebsiteURL:   input.WebsiteURL,
		IsActive:     true,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    time.Now().UTC(),
	}
	if input.IsActive != nil {
		company.IsActive = *input.IsActive
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("company", "create").Inc()
	s.logger.Info().Str("company_id", created.ID).Msg("company created")
	return created, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, page ports.PageRequest) (ports.Page[*domain.Company], error) {
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.Company]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return ports.Page[*domain.Company]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

func (s *CompanyService) Update(ctx context.Context, id string, input ports.CompanyInput) (*domain.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.LogoURL = input.LogoURL
	company.WebsiteURL = input.WebsiteURL
	company.DisplayOrder = input.DisplayOrder
	if input.IsActive != nil {
		company.IsActive = *input.IsActive
	}
	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("company", "update").Inc()
	s.logger.Info().Str("company_id", company.ID).Msg("company updated")
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("company", "delete").Inc()
	s.logger.Info().Str("company_id", id).Msg("company deleted")
	return nil
}
