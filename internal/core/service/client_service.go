package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	now := time.Now().UTC()
	client := &domain.Client{CreatedAt: now}
	if err := applyClientInput(client, input, now); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("client", "create").Inc()
	s.logger.Info().Str("client_id", created.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context, filter ports.ClientFilter, page ports.PageRequest) (ports.Page[*domain.Client], error) {
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.Client]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return ports.Page[*domain.Client]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

func (s *ClientService) ListActive(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.ListActive(ctx)
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.ClientInput) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyClientInput(client, input, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("client", "update").Inc()
	s.logger.Info().Str("client_id", client.ID).Msg("client updated")
	return client, nil
}

// Delete removes the client and cascades to its contracts and resource
// requirements; they have no independent lifecycle.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("client", "delete").Inc()
	s.logger.Info().Str("client_id", id).Msg("client deleted with contracts and requirements")
	return nil
}

func (s *ClientService) ToggleStatus(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := client.ToggleStatus(); err != nil {
		return nil, err
	}
	client.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", id).Str("status", string(client.Status)).Msg("client status toggled")
	return client, nil
}

func applyClientInput(client *domain.Client, input ports.ClientInput, now time.Time) error {
	status := domain.ClientStatus(input.Status)
	if input.Status == "" {
		status = domain.ClientActive
	}
	if !status.Valid() {
		return domain.NewValidation("status", "must be one of: active, inactive, prospect")
	}

	client.Name = input.Name
	client.CompanyName = input.CompanyName
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address
	client.Industry = input.Industry
	client.WebsiteURL = input.WebsiteURL
	client.ContactPerson = input.ContactPerson
	client.Status = status
	client.Notes = input.Notes
	client.UpdatedAt = now
	return nil
}
