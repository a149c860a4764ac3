package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// InquiryRepository defines persistence operations for contact inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, i *domain.Inquiry) (*domain.Inquiry, error)
	FindByID(ctx context.Context, id string) (*domain.Inquiry, error)
	// List returns inquiries newest first. A non-nil isRead filters on the
	// read marker.
	List(ctx context.Context, isRead *bool, page PageRequest) ([]*domain.Inquiry, int64, error)
	Update(ctx context.Context, i *domain.Inquiry) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

// InquiryInput is the public contact-form payload.
type InquiryInput struct {
	FullName    string `json:"full_name" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,len=10,numeric"`
	InquiryType string `json:"inquiry_type" validate:"required"`
	Message     string `json:"message" validate:"required,min=20"`
}

// InquiryService defines the submission and back-office triage use cases.
type InquiryService interface {
	Submit(ctx context.Context, input InquiryInput) (*domain.Inquiry, error)
	List(ctx context.Context, isRead *bool, page PageRequest) (Page[*domain.Inquiry], error)
	MarkRead(ctx context.Context, id string, isRead bool) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

// DashboardService aggregates the admin landing-page counters.
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}
