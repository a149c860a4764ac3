package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// TestimonialHandler handles the public testimonial listing and its
// administration.
type TestimonialHandler struct {
	service ports.TestimonialService
}

func NewTestimonialHandler(service ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// Public handles GET /api/testimonials — the unauthenticated listing of
// active testimonials, newest first.
//
// @Summary      List active testimonials
// @Tags         testimonials
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries to return (all when omitted)"
// @Success      200    {array}   domain.Testimonial
// @Failure      400    {object}  map[string]string
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) Public(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive number")
		}
		limit = v
	}

	testimonials, err := h.service.ListPublic(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, testimonials)
}

// List handles GET /api/admin/testimonials.
//
// @Summary      List testimonials for moderation
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Param        isActive  query     bool    false  "Filter by visibility"
// @Success      200       {object}  ports.Page[domain.Testimonial]
// @Failure      400       {object}  map[string]string
// @Router       /api/admin/testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	var isActive *bool
	if raw := c.QueryParam("isActive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isActive must be true or false")
		}
		isActive = &v
	}

	pageReq, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), isActive, pageReq)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, page)
}

// Update handles PUT /api/admin/testimonials/:id.
//
// @Summary      Update a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Testimonial id"
// @Param        body  body      ports.TestimonialInput  true  "Testimonial details"
// @Success      200   {object}  domain.Testimonial
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	var req ports.TestimonialInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	testimonial, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, testimonial)
}

// Delete handles DELETE /api/admin/testimonials/:id.
//
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Testimonial id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "testimonial deleted")
}
