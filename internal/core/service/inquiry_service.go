package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// InquiryService implements public contact-form submission and the
// back-office triage operations (read marker, deletion).
type InquiryService struct {
	repo   ports.InquiryRepository
	logger zerolog.Logger
}

func NewInquiryService(repo ports.InquiryRepository, logger zerolog.Logger) *InquiryService {
	return &InquiryService{repo: repo, logger: logger}
}

// Submit stores a public inquiry. New inquiries are always unread
// regardless of the caller-supplied value.
func (s *InquiryService) Submit(ctx context.Context, input ports.InquiryInput) (*domain.Inquiry, error) {
	now := time.Now().UTC()
	inquiry := &domain.Inquiry{
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		InquiryType: input.InquiryType,
		Message:     input.Message,
		IsRead:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	metrics.InquiriesSubmittedTotal.Inc()
	s.logger.Info().Str("inquiry_id", created.ID).Str("type", created.InquiryType).Msg("inquiry submitted")
	return created, nil
}

func (s *InquiryService) List(ctx context.Context, isRead *bool, page ports.PageRequest) (ports.Page[*domain.Inquiry], error) {
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.Inquiry]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, isRead, page)
	if err != nil {
		return ports.Page[*domain.Inquiry]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

// MarkRead flips the read marker in either direction.
func (s *InquiryService) MarkRead(ctx context.Context, id string, isRead bool) (*domain.Inquiry, error) {
	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inquiry.IsRead = isRead
	inquiry.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, inquiry); err != nil {
		return nil, err
	}

	s.logger.Info().Str("inquiry_id", id).Bool("is_read", isRead).Msg("inquiry read marker updated")
	return inquiry, nil
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntityMutationsTotal.WithLabelValues("inquiry", "delete").Inc()
	s.logger.Info().Str("inquiry_id", id).Msg("inquiry deleted")
	return nil
}
