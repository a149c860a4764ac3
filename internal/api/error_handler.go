package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/pkg/logger"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HTTPErrorHandler maps domain errors onto HTTP status codes and renders a
// uniform error envelope. Unrecognised errors are logged and reported as a
// generic 500 so internals never leak to clients.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var (
		httpErr     *echo.HTTPError
		notFound    *domain.NotFoundError
		validation  *domain.ValidationError
		conflictErr *domain.ConflictError
	)

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		message = notFound.Error()
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		message = validation.Error()
	case errors.As(err, &conflictErr):
		status = http.StatusConflict
		message = conflictErr.Error()
	case errors.Is(err, domain.ErrConsentRequired):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrEmailRegistered):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrInvalidSecretKey):
		status = http.StatusForbidden
		message = err.Error()
	default:
		log := logger.Get()
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, errorResponse{Success: false, Error: message})
}
