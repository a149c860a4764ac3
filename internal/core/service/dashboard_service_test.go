package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

func TestDashboardService_Stats(t *testing.T) {
	inquiries := newStubInquiryRepo()
	inquiries.entries["inq1"] = &domain.Inquiry{ID: "inq1", IsRead: false}
	inquiries.entries["inq2"] = &domain.Inquiry{ID: "inq2", IsRead: true}
	inquiries.entries["inq3"] = &domain.Inquiry{ID: "inq3", IsRead: false}

	feedback := newStubFeedbackRepo()
	feedback.entries["fb1"] = &domain.Feedback{ID: "fb1", Status: domain.FeedbackPending}
	feedback.entries["fb2"] = &domain.Feedback{ID: "fb2", Status: domain.FeedbackApproved}

	testimonials := newStubTestimonialRepo()
	testimonials.entries["tm1"] = &domain.Testimonial{ID: "tm1", IsActive: true}
	testimonials.entries["tm2"] = &domain.Testimonial{ID: "tm2", IsActive: false}

	svc := NewDashboardService(inquiries, feedback, testimonials, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalInquiries != 3 {
		t.Errorf("TotalInquiries = %d, want 3", stats.TotalInquiries)
	}
	if stats.UnreadInquiries != 2 {
		t.Errorf("UnreadInquiries = %d, want 2", stats.UnreadInquiries)
	}
	if stats.PendingFeedback != 1 {
		t.Errorf("PendingFeedback = %d, want 1", stats.PendingFeedback)
	}
	if stats.ActiveTestimonials != 1 {
		t.Errorf("ActiveTestimonials = %d, want 1", stats.ActiveTestimonials)
	}
	if stats.LastUpdated.IsZero() {
		t.Error("LastUpdated should be set")
	}
}

func TestDashboardService_Stats_EmptyCollections(t *testing.T) {
	svc := NewDashboardService(newStubInquiryRepo(), newStubFeedbackRepo(), newStubTestimonialRepo(), zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalInquiries != 0 || stats.UnreadInquiries != 0 || stats.PendingFeedback != 0 || stats.ActiveTestimonials != 0 {
		t.Fatalf("expected zero counters, got %+v", stats)
	}
}
