package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

const dateLayout = "2006-01-02"

type ContractService struct {
	repo    ports.ContractRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewContractService(repo ports.ContractRepository, clients ports.ClientRepository, logger zerolog.Logger) *ContractService {
	return &ContractService{repo: repo, clients: clients, logger: logger}
}

func (s *ContractService) Create(ctx context.Context, input ports.ContractInput) (*domain.Contract, error) {
	now := time.Now().UTC()
	contract := &domain.Contract{CreatedAt: now}
	if err := s.applyInput(ctx, contract, input, now); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, contract)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("contract", "create").Inc()
	s.logger.Info().Str("contract_id", created.ID).Str("client_id", created.ClientID).Msg("contract created")
	return created, nil
}

func (s *ContractService) Get(ctx context.Context, id string) (*domain.Contract, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContractService) List(ctx context.Context, filter ports.ContractFilter, page ports.PageRequest) (ports.Page[*domain.Contract], error) {
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.Contract]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return ports.Page[*domain.Contract]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

// ListExpiring returns contracts whose end date falls within
// [today, today+days].
func (s *ContractService) ListExpiring(ctx context.Context, days int) ([]*domain.Contract, error) {
	if days < 0 {
		return nil, domain.NewValidation("days", "must not be negative")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return s.repo.FindExpiring(ctx, today, today.AddDate(0, 0, days))
}

func (s *ContractService) Update(ctx context.Context, id string, input ports.ContractInput) (*domain.Contract, error) {
	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyInput(ctx, contract, input, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("contract", "update").Inc()
	s.logger.Info().Str("contract_id", contract.ID).Msg("contract updated")
	return contract, nil
}

func (s *ContractService) UpdateStatus(ctx context.Context, id, status string) (*domain.Contract, error) {
	next := domain.ContractStatus(status)
	if !next.Valid() {
		return nil, domain.NewValidation("status", "must be one of: active, completed, terminated, expired")
	}

	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contract.Status = next
	contract.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}

	s.logger.Info().Str("contract_id", id).Str("status", status).Msg("contract status updated")
	return contract, nil
}

func (s *ContractService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("contract", "delete").Inc()
	s.logger.Info().Str("contract_id", id).Msg("contract deleted")
	return nil
}

// applyInput maps the request onto the contract, resolving the referenced
// client first: a missing client aborts the mutation.
func (s *ContractService) applyInput(ctx context.Context, contract *domain.Contract, input ports.ContractInput, now time.Time) error {
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return err
	}

	start, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return domain.NewValidation("start_date", "must be a date in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		return domain.NewValidation("end_date", "must be a date in YYYY-MM-DD format")
	}

	contract.Name = input.Name
	contract.ContractNumber = input.ContractNumber
	contract.Description = input.Description
	contract.ClientID = input.ClientID
	contract.StartDate = start
	contract.EndDate = end
	contract.ContractValue = input.ContractValue
	contract.Currency = input.Currency
	if contract.Currency == "" {
		contract.Currency = "USD"
	}
	contract.Status = domain.ContractStatus(input.Status)
	if input.Status == "" {
		contract.Status = domain.ContractActive
	}
	contract.PaymentTerms = input.PaymentTerms
	contract.DocumentURL = input.DocumentURL
	contract.Terms = input.Terms
	contract.Notes = input.Notes
	contract.UpdatedAt = now

	return contract.Validate()
}
