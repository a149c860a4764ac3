package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type stubFeedbackService struct {
	submitFn  func(ctx context.Context, input ports.FeedbackInput) (*domain.Feedback, error)
	listFn    func(ctx context.Context, status string, page ports.PageRequest) (ports.Page[*domain.Feedback], error)
	approveFn func(ctx context.Context, id, role string) (*domain.Testimonial, error)
	rejectFn  func(ctx context.Context, id string) (*domain.Feedback, error)
}

func (s *stubFeedbackService) Submit(ctx context.Context, input ports.FeedbackInput) (*domain.Feedback, error) {
	return s.submitFn(ctx, input)
}

func (s *stubFeedbackService) List(ctx context.Context, status string, page ports.PageRequest) (ports.Page[*domain.Feedback], error) {
	return s.listFn(ctx, status, page)
}

func (s *stubFeedbackService) Approve(ctx context.Context, id, role string) (*domain.Testimonial, error) {
	return s.approveFn(ctx, id, role)
}

func (s *stubFeedbackService) Reject(ctx context.Context, id string) (*domain.Feedback, error) {
	return s.rejectFn(ctx, id)
}

func TestFeedbackHandler_Submit_Success(t *testing.T) {
	stub := &stubFeedbackService{
		submitFn: func(_ context.Context, input ports.FeedbackInput) (*domain.Feedback, error) {
			if !input.Consent {
				t.Fatalf("consent not bound")
			}
			return &domain.Feedback{ID: "fb1", Name: input.Name, Status: domain.FeedbackPending}, nil
		},
	}
	h := NewFeedbackHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/feedback",
		`{"name":"Priya Sharma","rating":5,"feedback":"Excellent placement support","consent":true}`)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["status"] != "pending" {
		t.Fatalf("expected pending feedback in payload, got %+v", resp)
	}
}

func TestFeedbackHandler_Submit_ShortFeedbackRejected(t *testing.T) {
	h := NewFeedbackHandler(&stubFeedbackService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/feedback",
		`{"name":"Priya Sharma","rating":5,"feedback":"too short","consent":true}`)

	if err := h.Submit(c); err == nil {
		t.Fatalf("expected validation error for short feedback")
	}
}

func TestFeedbackHandler_Approve(t *testing.T) {
	stub := &stubFeedbackService{
		approveFn: func(_ context.Context, id, role string) (*domain.Testimonial, error) {
			if id != "fb1" || role != "Engineer" {
				t.Fatalf("unexpected args: %s %s", id, role)
			}
			return &domain.Testimonial{ID: "tm1", FeedbackID: id, Role: role, IsActive: true}, nil
		},
	}
	h := NewFeedbackHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/feedback/fb1/approve", `{"role":"Engineer"}`)
	c.SetParamNames("id")
	c.SetParamValues("fb1")

	if err := h.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestFeedbackHandler_Approve_Conflict(t *testing.T) {
	stub := &stubFeedbackService{
		approveFn: func(context.Context, string, string) (*domain.Testimonial, error) {
			return nil, domain.NewConflict("feedback has already been approved")
		},
	}
	h := NewFeedbackHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/admin/feedback/fb1/approve", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("fb1")

	err := h.Approve(c)
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError to propagate, got %v", err)
	}
}

func TestFeedbackHandler_Reject(t *testing.T) {
	stub := &stubFeedbackService{
		rejectFn: func(_ context.Context, id string) (*domain.Feedback, error) {
			return &domain.Feedback{ID: id, Status: domain.FeedbackRejected}, nil
		},
	}
	h := NewFeedbackHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/feedback/fb1/reject", "")
	c.SetParamNames("id")
	c.SetParamValues("fb1")

	if err := h.Reject(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
