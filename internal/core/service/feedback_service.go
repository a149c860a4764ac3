package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// FeedbackService implements public submission and the pending →
// approved/rejected moderation workflow. Both outcomes are terminal.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	cache  ports.TestimonialCache
	logger zerolog.Logger
}

func NewFeedbackService(repo ports.FeedbackRepository, cache ports.TestimonialCache, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, cache: cache, logger: logger}
}

// Submit stores a public feedback. Consent is mandatory and the stored
// status is always pending regardless of the caller-supplied value.
func (s *FeedbackService) Submit(ctx context.Context, input ports.FeedbackInput) (*domain.Feedback, error) {
	if !input.Consent {
		return nil, domain.ErrConsentRequired
	}

	now := time.Now().UTC()
	feedback := &domain.Feedback{
		Name:      input.Name,
		Email:     input.Email,
		Rating:    input.Rating,
		Feedback:  input.Feedback,
		Consent:   true,
		Status:    domain.FeedbackPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, feedback)
	if err != nil {
		return nil, err
	}

	metrics.FeedbackSubmittedTotal.Inc()
	s.logger.Info().Str("feedback_id", created.ID).Int("rating", created.Rating).Msg("feedback submitted")
	return created, nil
}

func (s *FeedbackService) List(ctx context.Context, status string, page ports.PageRequest) (ports.Page[*domain.Feedback], error) {
	if status != "" && !domain.FeedbackStatus(status).Valid() {
		return ports.Page[*domain.Feedback]{}, domain.NewValidation("status", "must be one of: pending, approved, rejected")
	}
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.Feedback]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, status, page)
	if err != nil {
		return ports.Page[*domain.Feedback]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

// Approve marks a pending feedback approved and materializes exactly one
// testimonial from it, as a single atomic unit of work. The status write
// is guarded on pending, so a concurrent approve of the same feedback gets
// a conflict and no second testimonial.
func (s *FeedbackService) Approve(ctx context.Context, id, role string) (*domain.Testimonial, error) {
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback.Status != domain.FeedbackPending {
		return nil, domain.NewConflict("feedback has already been " + string(feedback.Status))
	}

	testimonial := domain.FromFeedback(feedback, role, time.Now().UTC())
	created, err := s.repo.ApprovePending(ctx, id, testimonial)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("testimonial cache invalidation failed")
		}
	}

	metrics.FeedbackModeratedTotal.WithLabelValues("approved").Inc()
	s.logger.Info().Str("feedback_id", id).Str("testimonial_id", created.ID).Msg("feedback approved")
	return created, nil
}

// Reject marks a pending feedback rejected. No testimonial is created.
func (s *FeedbackService) Reject(ctx context.Context, id string) (*domain.Feedback, error) {
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback.Status != domain.FeedbackPending {
		return nil, domain.NewConflict("feedback has already been " + string(feedback.Status))
	}

	if err := s.repo.RejectPending(ctx, id); err != nil {
		return nil, err
	}
	feedback.Status = domain.FeedbackRejected
	feedback.UpdatedAt = time.Now().UTC()

	metrics.FeedbackModeratedTotal.WithLabelValues("rejected").Inc()
	s.logger.Info().Str("feedback_id", id).Msg("feedback rejected")
	return feedback, nil
}
