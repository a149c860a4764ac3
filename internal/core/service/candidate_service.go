package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type CandidateService struct {
	repo     ports.CandidateRepository
	openings ports.JobOpeningRepository
	logger   zerolog.Logger
}

func NewCandidateService(repo ports.CandidateRepository, openings ports.JobOpeningRepository, logger zerolog.Logger) *CandidateService {
	return &CandidateService{repo: repo, openings: openings, logger: logger}
}

func (s *CandidateService) Create(ctx context.Context, input ports.CandidateInput) (*domain.Candidate, error) {
	now := time.Now().UTC()
	candidate := &domain.Candidate{AppliedAt: now}
	if err := s.applyInput(ctx, candidate, input, now); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("candidate", "create").Inc()
	s.logger.Info().Str("candidate_id", created.ID).Str("job_opening_id", created.JobOpeningID).Msg("candidate created")
	return created, nil
}

func (s *CandidateService) Get(ctx context.Context, id string) (*domain.Candidate, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CandidateService) List(ctx context.Context, filter ports.CandidateFilter, page ports.PageRequest) (ports.Page[*domain.Candidate], error) {
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.Candidate]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return ports.Page[*domain.Candidate]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

func (s *CandidateService) Update(ctx context.Context, id string, input ports.CandidateInput) (*domain.Candidate, error) {
	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyInput(ctx, candidate, input, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	metrics.EntityMutationsTotal.WithLabelValues("candidate", "update").Inc()
	s.logger.Info().Str("candidate_id", candidate.ID).Msg("candidate updated")
	return candidate, nil
}

// UpdateInterviewStage assigns any stage from the closed set; the pipeline
// is human-driven, so no adjacency is enforced.
func (s *CandidateService) UpdateInterviewStage(ctx context.Context, id, stage string) (*domain.Candidate, error) {
	next := domain.InterviewStage(stage)
	if !next.Valid() {
		return nil, domain.NewValidation("interview_stage", "must be one of: screening, technical, hr, final, offered, rejected")
	}

	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate.InterviewStage = next
	candidate.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	s.logger.Info().Str("candidate_id", id).Str("interview_stage", stage).Msg("candidate interview stage updated")
	return candidate, nil
}

func (s *CandidateService) UpdateHRNotes(ctx context.Context, id, notes string) (*domain.Candidate, error) {
	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate.HRNotes = notes
	candidate.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	s.logger.Info().Str("candidate_id", id).Msg("candidate hr notes updated")
	return candidate, nil
}

func (s *CandidateService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("candidate", "delete").Inc()
	s.logger.Info().Str("candidate_id", id).Msg("candidate deleted")
	return nil
}

// applyInput maps the request onto the candidate, resolving the referenced
// job opening first. AppliedAt is never touched.
func (s *CandidateService) applyInput(ctx context.Context, candidate *domain.Candidate, input ports.CandidateInput, now time.Time) error {
	if _, err := s.openings.FindByID(ctx, input.JobOpeningID); err != nil {
		return err
	}

	stage := domain.InterviewStage(input.InterviewStage)
	if input.InterviewStage == "" {
		stage = domain.StageScreening
	}
	if !stage.Valid() {
		return domain.NewValidation("interview_stage", "must be one of: screening, technical, hr, final, offered, rejected")
	}

	final := domain.FinalStatus(input.FinalStatus)
	if input.FinalStatus == "" {
		final = domain.FinalInProgress
	}
	if !final.Valid() {
		return domain.NewValidation("final_status", "must be one of: in-progress, selected, rejected, offered, joined")
	}

	candidate.Name = input.Name
	candidate.Email = input.Email
	candidate.Phone = input.Phone
	candidate.ResumeURL = input.ResumeURL
	candidate.LinkedinURL = input.LinkedinURL
	candidate.CurrentCompany = input.CurrentCompany
	candidate.TotalExperience = input.TotalExperience
	candidate.Skills = input.Skills
	candidate.InterviewStage = stage
	candidate.FinalStatus = final
	candidate.HRNotes = input.HRNotes
	candidate.JobOpeningID = input.JobOpeningID
	candidate.UpdatedAt = now
	return nil
}
