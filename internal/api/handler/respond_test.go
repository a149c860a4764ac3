package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPageFromQuery_Defaults(t *testing.T) {
	page, err := pageFromQuery(queryContext(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != defaultPage || page.Limit != defaultLimit {
		t.Fatalf("got page=%d limit=%d, want defaults %d/%d", page.Page, page.Limit, defaultPage, defaultLimit)
	}
}

func TestPageFromQuery_ExplicitValues(t *testing.T) {
	page, err := pageFromQuery(queryContext(t, "page=3&limit=25"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 3 || page.Limit != 25 {
		t.Fatalf("got page=%d limit=%d, want 3/25", page.Page, page.Limit)
	}
}

func TestPageFromQuery_NonNumeric(t *testing.T) {
	cases := []struct {
		name  string
		query string
		field string
	}{
		{"page", "page=abc", "page"},
		{"limit", "page=1&limit=ten", "limit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pageFromQuery(queryContext(t, tc.query))
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("got field %q, want %q", verr.Field, tc.field)
			}
		})
	}
}
