package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// DashboardService aggregates the counters shown on the admin landing page.
// Counts are read independently, so the snapshot is not transactional.
type DashboardService struct {
	inquiries    ports.InquiryRepository
	feedback     ports.FeedbackRepository
	testimonials ports.TestimonialRepository
	logger       zerolog.Logger
}

func NewDashboardService(
	inquiries ports.InquiryRepository,
	feedback ports.FeedbackRepository,
	testimonials ports.TestimonialRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		inquiries:    inquiries,
		feedback:     feedback,
		testimonials: testimonials,
		logger:       logger,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	total, err := s.inquiries.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.inquiries.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.feedback.CountByStatus(ctx, string(domain.FeedbackPending))
	if err != nil {
		return nil, err
	}
	active, err := s.testimonials.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalInquiries:     total,
		UnreadInquiries:    unread,
		PendingFeedback:    pending,
		ActiveTestimonials: active,
		LastUpdated:        time.Now().UTC(),
	}, nil
}
