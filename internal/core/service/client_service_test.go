package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type stubClientRepo struct {
	clients  map[string]*domain.Client
	cascaded []string
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	cp := *c
	cp.ID = "client1"
	r.clients[cp.ID] = &cp
	return &cp, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.NewNotFound("client", id)
	}
	cp := *c
	return &cp, nil
}

func (r *stubClientRepo) List(_ context.Context, _ ports.ClientFilter, _ ports.PageRequest) ([]*domain.Client, int64, error) {
	var out []*domain.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClientRepo) ListActive(_ context.Context) ([]*domain.Client, error) {
	var out []*domain.Client
	for _, c := range r.clients {
		if c.Status == domain.ClientActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domain.NewNotFound("client", c.ID)
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *stubClientRepo) DeleteCascade(_ context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return domain.NewNotFound("client", id)
	}
	delete(r.clients, id)
	r.cascaded = append(r.cascaded, id)
	return nil
}

func TestClientService_Create_DefaultsToActive(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	client, err := svc.Create(context.Background(), ports.ClientInput{Name: "Acme Corp"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if client.Status != domain.ClientActive {
		t.Fatalf("expected default status active, got %q", client.Status)
	}
}

func TestClientService_ToggleStatus(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	client, err := svc.Create(context.Background(), ports.ClientInput{Name: "Acme Corp"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	toggled, err := svc.ToggleStatus(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.Status != domain.ClientInactive {
		t.Fatalf("expected inactive after first toggle, got %q", toggled.Status)
	}

	toggled, err = svc.ToggleStatus(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if toggled.Status != domain.ClientActive {
		t.Fatalf("expected active after second toggle, got %q", toggled.Status)
	}
}

func TestClientService_ToggleStatus_ProspectConflicts(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	client, err := svc.Create(context.Background(), ports.ClientInput{Name: "Lead Inc", Status: "prospect"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.ToggleStatus(context.Background(), client.ID)
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError for prospect, got %v", err)
	}
	if repo.clients[client.ID].Status != domain.ClientProspect {
		t.Fatalf("prospect status must be unchanged after failed toggle")
	}
}

func TestClientService_Delete_Cascades(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	client, err := svc.Create(context.Background(), ports.ClientInput{Name: "Acme Corp"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), client.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.cascaded) != 1 || repo.cascaded[0] != client.ID {
		t.Fatalf("expected cascade delete of %s, got %v", client.ID, repo.cascaded)
	}

	var nf *domain.NotFoundError
	if err := svc.Delete(context.Background(), client.ID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestClientService_List_RejectsBadPage(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	_, err := svc.List(context.Background(), ports.ClientFilter{}, ports.PageRequest{Page: 0, Limit: 10})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for page 0, got %v", err)
	}

	_, err = svc.List(context.Background(), ports.ClientFilter{}, ports.PageRequest{Page: 1, Limit: 0})
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for limit 0, got %v", err)
	}
}

func TestClientService_Update_InvalidStatus(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	client, err := svc.Create(context.Background(), ports.ClientInput{Name: "Acme Corp"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(context.Background(), client.ID, ports.ClientInput{Name: "Acme Corp", Status: "archived"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
}
