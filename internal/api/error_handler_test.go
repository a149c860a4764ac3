package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/pkg/logger"
)

func TestHTTPErrorHandler(t *testing.T) {
	logger.Init(logger.Options{Level: "error", Output: io.Discard})

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.NewNotFound("client", "abc"), http.StatusNotFound},
		{"validation", domain.NewValidation("status", "must be valid"), http.StatusBadRequest},
		{"conflict", domain.NewConflict("feedback has already been approved"), http.StatusConflict},
		{"consent", domain.ErrConsentRequired, http.StatusBadRequest},
		{"email registered", domain.ErrEmailRegistered, http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid secret", domain.ErrInvalidSecretKey, http.StatusForbidden},
		{"http error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{"unknown", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			HTTPErrorHandler(tc.err, c)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Success {
				t.Fatalf("error envelope must not be successful")
			}
			if resp.Error == "" {
				t.Fatalf("expected an error message")
			}
		})
	}
}

func TestHTTPErrorHandler_HidesInternals(t *testing.T) {
	logger.Init(logger.Options{Level: "error", Output: io.Discard})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(errors.New("dial tcp 10.0.0.5:27017: connection refused"), c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp.Error)
	}
}
