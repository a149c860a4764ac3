package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// CandidateHandler handles HTTP requests for candidates.
type CandidateHandler struct {
	service ports.CandidateService
}

func NewCandidateHandler(service ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{service: service}
}

type interviewStageRequest struct {
	InterviewStage string `json:"interview_stage" validate:"required,oneof=screening technical hr final offered rejected"`
}

type hrNotesRequest struct {
	HRNotes string `json:"hr_notes"`
}

// Create handles POST /api/admin/candidates.
//
// @Summary      Register a candidate against a job opening
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CandidateInput  true  "Candidate details"
// @Success      201   {object}  domain.Candidate
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/candidates [post]
func (h *CandidateHandler) Create(c echo.Context) error {
	var req ports.CandidateInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	candidate, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, candidate)
}

// Get handles GET /api/admin/candidates/:id.
//
// @Summary      Get a candidate by id
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Candidate id"
// @Success      200 {object}  domain.Candidate
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/candidates/{id} [get]
func (h *CandidateHandler) Get(c echo.Context) error {
	candidate, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, candidate)
}

// List handles GET /api/admin/candidates. Filters are mutually exclusive:
// jobOpeningId wins over interviewStage, which wins over finalStatus.
//
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        page            query     int     false  "Page number (1-based)"
// @Param        limit           query     int     false  "Page size (max 100)"
// @Param        jobOpeningId    query     string  false  "Filter by job opening"
// @Param        interviewStage  query     string  false  "Filter by interview stage"
// @Param        finalStatus     query     string  false  "Filter by final status"
// @Success      200             {object}  ports.Page[domain.Candidate]
// @Failure      400             {object}  map[string]string
// @Router       /api/admin/candidates [get]
func (h *CandidateHandler) List(c echo.Context) error {
	filter := ports.CandidateFilter{
		JobOpeningID:   c.QueryParam("jobOpeningId"),
		InterviewStage: c.QueryParam("interviewStage"),
		FinalStatus:    c.QueryParam("finalStatus"),
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

// Update handles PUT /api/admin/candidates/:id.
//
// @Summary      Update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Candidate id"
// @Param        body  body      ports.CandidateInput  true  "Candidate details"
// @Success      200   {object}  domain.Candidate
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/candidates/{id} [put]
func (h *CandidateHandler) Update(c echo.Context) error {
	var req ports.CandidateInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	candidate, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, candidate)
}

// UpdateInterviewStage handles PATCH /api/admin/candidates/:id/interview-stage.
//
// @Summary      Move a candidate to another interview stage
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Candidate id"
// @Param        body  body      interviewStageRequest  true  "New interview stage"
// @Success      200   {object}  domain.Candidate
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/candidates/{id}/interview-stage [patch]
func (h *CandidateHandler) UpdateInterviewStage(c echo.Context) error {
	var req interviewStageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	candidate, err := h.service.UpdateInterviewStage(c.Request().Context(), c.Param("id"), req.InterviewStage)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, candidate)
}

// UpdateHRNotes handles PATCH /api/admin/candidates/:id/hr-notes.
//
// @Summary      Replace the HR notes on a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Candidate id"
// @Param        body  body      hrNotesRequest  true  "Notes"
// @Success      200   {object}  domain.Candidate
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/candidates/{id}/hr-notes [patch]
func (h *CandidateHandler) UpdateHRNotes(c echo.Context) error {
	var req hrNotesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	candidate, err := h.service.UpdateHRNotes(c.Request().Context(), c.Param("id"), req.HRNotes)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, candidate)
}

// Delete handles DELETE /api/admin/candidates/:id.
//
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Candidate id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "candidate deleted")
}
