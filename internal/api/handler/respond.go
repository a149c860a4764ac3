package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// envelope is the uniform success payload shape.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: true, Message: message})
}

// pageFromQuery reads ?page= and ?limit= with defaults. Non-numeric values
// are a validation error; non-positive values are rejected downstream by
// PageRequest.Validate.
func pageFromQuery(c echo.Context) (ports.PageRequest, error) {
	req := ports.PageRequest{Page: defaultPage, Limit: defaultLimit}
	if raw := c.QueryParam("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return ports.PageRequest{}, domain.NewValidation("page", "must be an integer")
		}
		req.Page = v
	}
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return ports.PageRequest{}, domain.NewValidation("limit", "must be an integer")
		}
		req.Limit = v
	}
	return req, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
