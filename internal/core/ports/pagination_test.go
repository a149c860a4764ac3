package ports

import (
	"errors"
	"testing"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

func TestPageRequest_Validate(t *testing.T) {
	var ve *domain.ValidationError

	if err := (PageRequest{Page: 0, Limit: 10}).Validate(); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for page 0, got %v", err)
	}
	if err := (PageRequest{Page: 1, Limit: -1}).Validate(); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for negative limit, got %v", err)
	}
	if err := (PageRequest{Page: 1, Limit: 1}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPageRequest_Capped(t *testing.T) {
	capped := PageRequest{Page: 1, Limit: 500}.Capped()
	if capped.Limit != maxPageLimit {
		t.Fatalf("expected limit capped to %d, got %d", maxPageLimit, capped.Limit)
	}

	unchanged := PageRequest{Page: 1, Limit: 25}.Capped()
	if unchanged.Limit != 25 {
		t.Fatalf("expected limit 25 untouched, got %d", unchanged.Limit)
	}
}

func TestPageRequest_Offset(t *testing.T) {
	if got := (PageRequest{Page: 1, Limit: 10}).Offset(); got != 0 {
		t.Fatalf("expected offset 0 for first page, got %d", got)
	}
	if got := (PageRequest{Page: 3, Limit: 20}).Offset(); got != 40 {
		t.Fatalf("expected offset 40, got %d", got)
	}
}

func TestNewPage_Totals(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, 23, PageRequest{Page: 1, Limit: 10})
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages for 23/10, got %d", page.TotalPages)
	}
	if page.Total != 23 || page.Page != 1 || page.Limit != 10 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
}

func TestNewPage_OutOfRangePage(t *testing.T) {
	page := NewPage[int](nil, 23, PageRequest{Page: 9, Limit: 10})
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", page.Items)
	}
	if page.Total != 23 || page.TotalPages != 3 {
		t.Fatalf("totals must stay correct on out-of-range pages: %+v", page)
	}
}
