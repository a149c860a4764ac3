package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// JobOpeningHandler handles HTTP requests for job openings.
type JobOpeningHandler struct {
	service ports.JobOpeningService
}

func NewJobOpeningHandler(service ports.JobOpeningService) *JobOpeningHandler {
	return &JobOpeningHandler{service: service}
}

// Create handles POST /api/admin/job-openings.
//
// @Summary      Create a job opening
// @Tags         job-openings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.JobOpeningInput  true  "Job opening details"
// @Success      201   {object}  domain.JobOpening
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/job-openings [post]
func (h *JobOpeningHandler) Create(c echo.Context) error {
	var req ports.JobOpeningInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	opening, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, opening)
}

// Get handles GET /api/admin/job-openings/:id.
//
// @Summary      Get a job opening by id
// @Tags         job-openings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Job opening id"
// @Success      200 {object}  domain.JobOpening
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/job-openings/{id} [get]
func (h *JobOpeningHandler) Get(c echo.Context) error {
	opening, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, opening)
}

// List handles GET /api/admin/job-openings.
//
// @Summary      List job openings
// @Tags         job-openings
// @Produce      json
// @Security     BearerAuth
// @Param        page        query     int     false  "Page number (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Param        companyId   query     string  false  "Filter by company"
// @Param        status      query     string  false  "Filter by status"
// @Param        department  query     string  false  "Filter by department"
// @Success      200         {object}  ports.Page[domain.JobOpening]
// @Failure      400         {object}  map[string]string
// @Router       /api/admin/job-openings [get]
func (h *JobOpeningHandler) List(c echo.Context) error {
	filter := ports.JobOpeningFilter{
		CompanyID:  c.QueryParam("companyId"),
		Status:     c.QueryParam("status"),
		Department: c.QueryParam("department"),
	}

	pageReq, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), filter, pageReq)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, page)
}

// Update handles PUT /api/admin/job-openings/:id.
//
// @Summary      Update a job opening
// @Tags         job-openings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Job opening id"
// @Param        body  body      ports.JobOpeningInput  true  "Job opening details"
// @Success      200   {object}  domain.JobOpening
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/job-openings/{id} [put]
func (h *JobOpeningHandler) Update(c echo.Context) error {
	var req ports.JobOpeningInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	opening, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, opening)
}

// Delete handles DELETE /api/admin/job-openings/:id. Removes the opening
// together with its candidates.
//
// @Summary      Delete a job opening and its candidates
// @Tags         job-openings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Job opening id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/job-openings/{id} [delete]
func (h *JobOpeningHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "job opening deleted")
}

// ToggleStatus handles PATCH /api/admin/job-openings/:id/toggle-status.
//
// @Summary      Flip a job opening between open and closed
// @Tags         job-openings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Job opening id"
// @Success      200 {object}  domain.JobOpening
// @Failure      404 {object}  map[string]string
// @Failure      409 {object}  map[string]string
// @Router       /api/admin/job-openings/{id}/toggle-status [patch]
func (h *JobOpeningHandler) ToggleStatus(c echo.Context) error {
	opening, err := h.service.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, opening)
}
