package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type stubInquiryService struct {
	submitFn   func(ctx context.Context, input ports.InquiryInput) (*domain.Inquiry, error)
	listFn     func(ctx context.Context, isRead *bool, page ports.PageRequest) (ports.Page[*domain.Inquiry], error)
	markReadFn func(ctx context.Context, id string, isRead bool) (*domain.Inquiry, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubInquiryService) Submit(ctx context.Context, input ports.InquiryInput) (*domain.Inquiry, error) {
	return s.submitFn(ctx, input)
}

func (s *stubInquiryService) List(ctx context.Context, isRead *bool, page ports.PageRequest) (ports.Page[*domain.Inquiry], error) {
	return s.listFn(ctx, isRead, page)
}

func (s *stubInquiryService) MarkRead(ctx context.Context, id string, isRead bool) (*domain.Inquiry, error) {
	return s.markReadFn(ctx, id, isRead)
}

func (s *stubInquiryService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestInquiryHandler_Submit_Success(t *testing.T) {
	stub := &stubInquiryService{
		submitFn: func(_ context.Context, input ports.InquiryInput) (*domain.Inquiry, error) {
			if input.Phone != "9876543210" {
				t.Fatalf("phone not bound: %q", input.Phone)
			}
			return &domain.Inquiry{ID: "inq1", FullName: input.FullName}, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/inquiries",
		`{"full_name":"Rohan Mehta","email":"rohan@example.com","phone":"9876543210","inquiry_type":"placement","message":"Looking for help switching into data engineering."}`)

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
	if resp["success"] != true || resp["message"] == "" {
		t.Fatalf("unexpected envelope: %v", resp)
	}
}

func TestInquiryHandler_Submit_RejectsBadPhone(t *testing.T) {
	h := NewInquiryHandler(&stubInquiryService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/inquiries",
		`{"full_name":"Rohan Mehta","email":"rohan@example.com","phone":"12345","inquiry_type":"placement","message":"Looking for help switching into data engineering."}`)

	err := h.Submit(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestInquiryHandler_MarkRead_DefaultsToRead(t *testing.T) {
	stub := &stubInquiryService{
		markReadFn: func(_ context.Context, id string, isRead bool) (*domain.Inquiry, error) {
			if id != "inq1" || !isRead {
				t.Fatalf("got id=%q isRead=%v, want inq1/true", id, isRead)
			}
			return &domain.Inquiry{ID: id, IsRead: isRead}, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/api/admin/inquiries/inq1/read", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("inq1")

	if err := h.MarkRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestInquiryHandler_MarkRead_ExplicitUnread(t *testing.T) {
	stub := &stubInquiryService{
		markReadFn: func(_ context.Context, _ string, isRead bool) (*domain.Inquiry, error) {
			if isRead {
				t.Fatal("expected isRead=false")
			}
			return &domain.Inquiry{ID: "inq1", IsRead: isRead}, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/api/admin/inquiries/inq1/read", `{"is_read":false}`)
	c.SetParamNames("id")
	c.SetParamValues("inq1")

	if err := h.MarkRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestInquiryHandler_List_RejectsBadReadFilter(t *testing.T) {
	h := NewInquiryHandler(&stubInquiryService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/admin/inquiries?isRead=maybe", "")

	err := h.List(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
