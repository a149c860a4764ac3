package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type stubContractRepo struct {
	contracts map[string]*domain.Contract
	expiring  []*domain.Contract
	from, to  time.Time
}

func newStubContractRepo() *stubContractRepo {
	return &stubContractRepo{contracts: make(map[string]*domain.Contract)}
}

func (r *stubContractRepo) Create(_ context.Context, c *domain.Contract) (*domain.Contract, error) {
	cp := *c
	cp.ID = "contract1"
	r.contracts[cp.ID] = &cp
	return &cp, nil
}

func (r *stubContractRepo) FindByID(_ context.Context, id string) (*domain.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, domain.NewNotFound("contract", id)
	}
	cp := *c
	return &cp, nil
}

func (r *stubContractRepo) List(_ context.Context, _ ports.ContractFilter, _ ports.PageRequest) ([]*domain.Contract, int64, error) {
	var out []*domain.Contract
	for _, c := range r.contracts {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *stubContractRepo) FindExpiring(_ context.Context, from, to time.Time) ([]*domain.Contract, error) {
	r.from, r.to = from, to
	return r.expiring, nil
}

func (r *stubContractRepo) Update(_ context.Context, c *domain.Contract) error {
	if _, ok := r.contracts[c.ID]; !ok {
		return domain.NewNotFound("contract", c.ID)
	}
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *stubContractRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contracts[id]; !ok {
		return domain.NewNotFound("contract", id)
	}
	delete(r.contracts, id)
	return nil
}

func contractFixtures(t *testing.T) (*ContractService, *stubContractRepo, string) {
	t.Helper()
	clients := newStubClientRepo()
	client, err := clients.Create(context.Background(), &domain.Client{Name: "Acme Corp", Status: domain.ClientActive})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	repo := newStubContractRepo()
	return NewContractService(repo, clients, zerolog.Nop()), repo, client.ID
}

func TestContractService_Create(t *testing.T) {
	svc, _, clientID := contractFixtures(t)

	contract, err := svc.Create(context.Background(), ports.ContractInput{
		Name:      "Staffing 2026",
		ClientID:  clientID,
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if contract.Status != domain.ContractActive {
		t.Fatalf("expected default status active, got %q", contract.Status)
	}
	if contract.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %q", contract.Currency)
	}
}

func TestContractService_Create_UnknownClient(t *testing.T) {
	svc, _, _ := contractFixtures(t)

	_, err := svc.Create(context.Background(), ports.ContractInput{
		Name:      "Orphan",
		ClientID:  "missing",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
	})
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for unknown client, got %v", err)
	}
}

func TestContractService_Create_BadDates(t *testing.T) {
	svc, _, clientID := contractFixtures(t)
	var ve *domain.ValidationError

	_, err := svc.Create(context.Background(), ports.ContractInput{
		Name: "Bad", ClientID: clientID, StartDate: "01/01/2026", EndDate: "2026-12-31",
	})
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for malformed start date, got %v", err)
	}

	_, err = svc.Create(context.Background(), ports.ContractInput{
		Name: "Inverted", ClientID: clientID, StartDate: "2026-12-31", EndDate: "2026-01-01",
	})
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for end before start, got %v", err)
	}
}

func TestContractService_UpdateStatus(t *testing.T) {
	svc, _, clientID := contractFixtures(t)

	contract, err := svc.Create(context.Background(), ports.ContractInput{
		Name: "Staffing 2026", ClientID: clientID, StartDate: "2026-01-01", EndDate: "2026-12-31",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), contract.ID, "completed")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.ContractCompleted {
		t.Fatalf("expected completed, got %q", updated.Status)
	}

	_, err = svc.UpdateStatus(context.Background(), contract.ID, "paused")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
}

func TestContractService_ListExpiring(t *testing.T) {
	svc, repo, _ := contractFixtures(t)

	if _, err := svc.ListExpiring(context.Background(), 30); err != nil {
		t.Fatalf("list expiring: %v", err)
	}
	if got := repo.to.Sub(repo.from); got != 30*24*time.Hour {
		t.Fatalf("expected a 30-day window, got %v", got)
	}

	_, err := svc.ListExpiring(context.Background(), -1)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for negative days, got %v", err)
	}
}
