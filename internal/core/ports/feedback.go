package ports

import (
	"context"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

// FeedbackRepository defines persistence operations for feedback,
// including the status-guarded moderation writes.
type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	FindByID(ctx context.Context, id string) (*domain.Feedback, error)
	List(ctx context.Context, status string, page PageRequest) ([]*domain.Feedback, int64, error)
	// ApprovePending atomically marks the feedback approved and inserts the
	// testimonial. The status write is conditional on status == pending;
	// when the guard does not match, no write happens and a conflict error
	// is returned, so concurrent approvals linearize to one winner.
	ApprovePending(ctx context.Context, id string, t *domain.Testimonial) (*domain.Testimonial, error)
	// RejectPending marks the feedback rejected, conditional on
	// status == pending.
	RejectPending(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// FeedbackInput is the public submission payload.
type FeedbackInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback" validate:"required,min=10"`
	Consent  bool   `json:"consent"`
}

// FeedbackService defines the submission and moderation use cases.
type FeedbackService interface {
	Submit(ctx context.Context, input FeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context, status string, page PageRequest) (Page[*domain.Feedback], error)
	Approve(ctx context.Context, id, role string) (*domain.Testimonial, error)
	Reject(ctx context.Context, id string) (*domain.Feedback, error)
}
