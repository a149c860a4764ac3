package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// TestimonialRepository defines persistence operations for testimonials.
type TestimonialRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Testimonial, error)
	List(ctx context.Context, isActive *bool, page PageRequest) ([]*domain.Testimonial, int64, error)
	ListActive(ctx context.Context, limit int) ([]*domain.Testimonial, error)
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
}

// TestimonialCache caches the public active-testimonial listing.
// A miss returns (nil, false, nil).
type TestimonialCache interface {
	Get(ctx context.Context) ([]*domain.Testimonial, bool, error)
	Set(ctx context.Context, items []*domain.Testimonial) error
	Invalidate(ctx context.Context) error
}

// TestimonialInput carries the writable testimonial fields.
type TestimonialInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Message  string `json:"message" validate:"required"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// TestimonialService defines use-case operations for testimonials.
type TestimonialService interface {
	ListPublic(ctx context.Context, limit int) ([]*domain.Testimonial, error)
	List(ctx context.Context, isActive *bool, page PageRequest) (Page[*domain.Testimonial], error)
	Update(ctx context.Context, id string, input TestimonialInput) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
}
