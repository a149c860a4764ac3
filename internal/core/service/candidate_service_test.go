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

type stubCandidateRepo struct {
	candidates map[string]*domain.Candidate
}

func newStubCandidateRepo() *stubCandidateRepo {
	return &stubCandidateRepo{candidates: make(map[string]*domain.Candidate)}
}

func (r *stubCandidateRepo) Create(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	cp := *c
	cp.ID = "cand1"
	r.candidates[cp.ID] = &cp
	return &cp, nil
}

func (r *stubCandidateRepo) FindByID(_ context.Context, id string) (*domain.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, domain.NewNotFound("candidate", id)
	}
	cp := *c
	return &cp, nil
}

func (r *stubCandidateRepo) List(_ context.Context, _ ports.CandidateFilter, _ ports.PageRequest) ([]*domain.Candidate, int64, error) {
	var out []*domain.Candidate
	for _, c := range r.candidates {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCandidateRepo) Update(_ context.Context, c *domain.Candidate) error {
	if _, ok := r.candidates[c.ID]; !ok {
		return domain.NewNotFound("candidate", c.ID)
	}
	cp := *c
	r.candidates[c.ID] = &cp
	return nil
}

func (r *stubCandidateRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.candidates[id]; !ok {
		return domain.NewNotFound("candidate", id)
	}
	delete(r.candidates, id)
	return nil
}

type stubJobOpeningRepo struct {
	openings map[string]*domain.JobOpening
}

func newStubJobOpeningRepo() *stubJobOpeningRepo {
	return &stubJobOpeningRepo{openings: make(map[string]*domain.JobOpening)}
}

func (r *stubJobOpeningRepo) Create(_ context.Context, j *domain.JobOpening) (*domain.JobOpening, error) {
	cp := *j
	cp.ID = "job1"
	r.openings[cp.ID] = &cp
	return &cp, nil
}

func (r *stubJobOpeningRepo) FindByID(_ context.Context, id string) (*domain.JobOpening, error) {
	j, ok := r.openings[id]
	if !ok {
		return nil, domain.NewNotFound("job opening", id)
	}
	cp := *j
	return &cp, nil
}

func (r *stubJobOpeningRepo) List(_ context.Context, _ ports.JobOpeningFilter, _ ports.PageRequest) ([]*domain.JobOpening, int64, error) {
	var out []*domain.JobOpening
	for _, j := range r.openings {
		out = append(out, j)
	}
	return out, int64(len(out)), nil
}

func (r *stubJobOpeningRepo) Update(_ context.Context, j *domain.JobOpening) error {
	if _, ok := r.openings[j.ID]; !ok {
		return domain.NewNotFound("job opening", j.ID)
	}
	cp := *j
	r.openings[j.ID] = &cp
	return nil
}

func (r *stubJobOpeningRepo) DeleteCascade(_ context.Context, id string) error {
	if _, ok := r.openings[id]; !ok {
		return domain.NewNotFound("job opening", id)
	}
	delete(r.openings, id)
	return nil
}

func candidateFixtures(t *testing.T) (*CandidateService, *stubCandidateRepo, string) {
	t.Helper()
	openings := newStubJobOpeningRepo()
	job, err := openings.Create(context.Background(), &domain.JobOpening{Title: "Backend Engineer", Status: domain.JobOpen})
	if err != nil {
		t.Fatalf("seed opening: %v", err)
	}
	repo := newStubCandidateRepo()
	return NewCandidateService(repo, openings, zerolog.Nop()), repo, job.ID
}

func TestCandidateService_Create_Defaults(t *testing.T) {
	svc, _, jobID := candidateFixtures(t)

	candidate, err := svc.Create(context.Background(), ports.CandidateInput{
		Name: "Rahul Verma", Email: "rahul@example.com", JobOpeningID: jobID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if candidate.InterviewStage != domain.StageScreening {
		t.Fatalf("expected default stage screening, got %q", candidate.InterviewStage)
	}
	if candidate.FinalStatus != domain.FinalInProgress {
		t.Fatalf("expected default final status in-progress, got %q", candidate.FinalStatus)
	}
	if candidate.AppliedAt.IsZero() {
		t.Fatalf("expected applied_at set on create")
	}
}

func TestCandidateService_Create_UnknownOpening(t *testing.T) {
	svc, _, _ := candidateFixtures(t)

	_, err := svc.Create(context.Background(), ports.CandidateInput{
		Name: "Orphan", Email: "o@example.com", JobOpeningID: "missing",
	})
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCandidateService_UpdateInterviewStage(t *testing.T) {
	svc, _, jobID := candidateFixtures(t)

	candidate, err := svc.Create(context.Background(), ports.CandidateInput{
		Name: "Rahul Verma", Email: "rahul@example.com", JobOpeningID: jobID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	moved, err := svc.UpdateInterviewStage(context.Background(), candidate.ID, "technical")
	if err != nil {
		t.Fatalf("update stage: %v", err)
	}
	if moved.InterviewStage != domain.StageTechnical {
		t.Fatalf("expected technical, got %q", moved.InterviewStage)
	}

	// stages may also move backwards
	if _, err := svc.UpdateInterviewStage(context.Background(), candidate.ID, "screening"); err != nil {
		t.Fatalf("moving back to screening should be allowed: %v", err)
	}

	_, err = svc.UpdateInterviewStage(context.Background(), candidate.ID, "onsite")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown stage, got %v", err)
	}
}

func TestCandidateService_Update_PreservesAppliedAt(t *testing.T) {
	svc, repo, jobID := candidateFixtures(t)

	candidate, err := svc.Create(context.Background(), ports.CandidateInput{
		Name: "Rahul Verma", Email: "rahul@example.com", JobOpeningID: jobID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	applied := candidate.AppliedAt

	time.Sleep(time.Millisecond)
	updated, err := svc.Update(context.Background(), candidate.ID, ports.CandidateInput{
		Name: "Rahul V", Email: "rahul@example.com", JobOpeningID: jobID, InterviewStage: "hr",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.AppliedAt.Equal(applied) {
		t.Fatalf("applied_at must not change on update")
	}
	if !repo.candidates[candidate.ID].UpdatedAt.After(applied) {
		t.Fatalf("updated_at should advance")
	}
}

func TestCandidateService_UpdateHRNotes(t *testing.T) {
	svc, _, jobID := candidateFixtures(t)

	candidate, err := svc.Create(context.Background(), ports.CandidateInput{
		Name: "Rahul Verma", Email: "rahul@example.com", JobOpeningID: jobID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	noted, err := svc.UpdateHRNotes(context.Background(), candidate.ID, "Strong on system design")
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if noted.HRNotes != "Strong on system design" {
		t.Fatalf("notes not applied: %q", noted.HRNotes)
	}
}
