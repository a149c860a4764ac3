package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/api/metrics"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type TestimonialService struct {
	repo   ports.TestimonialRepository
	cache  ports.TestimonialCache
	logger zerolog.Logger
}

func NewTestimonialService(repo ports.TestimonialRepository, cache ports.TestimonialCache, logger zerolog.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, cache: cache, logger: logger}
}

// ListPublic returns active testimonials for the public site, served from
// the cache when possible. A cache failure degrades to a direct read.
func (s *TestimonialService) ListPublic(ctx context.Context, limit int) ([]*domain.Testimonial, error) {
	if s.cache != nil && limit <= 0 {
		items, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("testimonial cache read failed")
		} else if hit {
			return items, nil
		}
	}

	items, err := s.repo.ListActive(ctx, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && limit <= 0 {
		if err := s.cache.Set(ctx, items); err != nil {
			s.logger.Warn().Err(err).Msg("testimonial cache write failed")
		}
	}
	return items, nil
}

func (s *TestimonialService) List(ctx context.Context, isActive *bool, page ports.PageRequest) (ports.Page[*domain.Testimonial], error) {
	if err := page.Validate(); err != nil {
		return ports.Page[*domain.Testimonial]{}, err
	}
	page = page.Capped()

	items, total, err := s.repo.List(ctx, isActive, page)
	if err != nil {
		return ports.Page[*domain.Testimonial]{}, err
	}
	return ports.NewPage(items, total, page), nil
}

func (s *TestimonialService) Update(ctx context.Context, id string, input ports.TestimonialInput) (*domain.Testimonial, error) {
	testimonial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	testimonial.Name = input.Name
	testimonial.Email = input.Email
	testimonial.Rating = input.Rating
	testimonial.Message = input.Message
	testimonial.Role = input.Role
	if input.IsActive != nil {
		testimonial.IsActive = *input.IsActive
	}
	testimonial.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, testimonial); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	metrics.EntityMutationsTotal.WithLabelValues("testimonial", "update").Inc()
	s.logger.Info().Str("testimonial_id", id).Msg("testimonial updated")
	return testimonial, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)

	metrics.EntityMutationsTotal.WithLabelValues("testimonial", "delete").Inc()
	s.logger.Info().Str("testimonial_id", id).Msg("testimonial deleted")
	return nil
}

func (s *TestimonialService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("testimonial cache invalidation failed")
	}
}
