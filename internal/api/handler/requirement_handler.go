package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// RequirementHandler handles HTTP requests for resource requirements.
type RequirementHandler struct {
	service ports.RequirementService
}

func NewRequirementHandler(service ports.RequirementService) *RequirementHandler {
	return &RequirementHandler{service: service}
}

type requirementStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open fulfilled partially_fulfilled closed on-hold"`
}

// Create handles POST /api/admin/resource-requirements.
//
// @Summary      Create a resource requirement
// @Tags         requirements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.RequirementInput  true  "Requirement details"
// @Success      201   {object}  domain.ResourceRequirement
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/resource-requirements [post]
func (h *RequirementHandler) Create(c echo.Context) error {
	var req ports.RequirementInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	requirement, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, requirement)
}

// Get handles GET /api/admin/resource-requirements/:id.
//
// @Summary      Get a resource requirement by id
// @Tags         requirements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Requirement id"
// @Success      200 {object}  domain.ResourceRequirement
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/resource-requirements/{id} [get]
func (h *RequirementHandler) Get(c echo.Context) error {
	requirement, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, requirement)
}

// List handles GET /api/admin/resource-requirements.
//
// @Summary      List resource requirements
// @Tags         requirements
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Param        clientId  query     string  false  "Filter by owning client"
// @Param        status    query     string  false  "Filter by status"
// @Success      200       {object}  ports.Page[domain.ResourceRequirement]
// @Failure      400       {object}  map[string]string
// @Router       /api/admin/resource-requirements [get]
func (h *RequirementHandler) List(c echo.Context) error {
	filter := ports.RequirementFilter{
		ClientID: c.QueryParam("clientId"),
		Status:   c.QueryParam("status"),
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

// ListOpen handles GET /api/admin/resource-requirements/open.
//
// @Summary      List open resource requirements
// @Tags         requirements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ResourceRequirement
// @Router       /api/admin/resource-requirements/open [get]
func (h *RequirementHandler) ListOpen(c echo.Context) error {
	requirements, err := h.service.ListOpen(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, requirements)
}

// Update handles PUT /api/admin/resource-requirements/:id.
//
// @Summary      Update a resource requirement
// @Tags         requirements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Requirement id"
// @Param        body  body      ports.RequirementInput  true  "Requirement details"
// @Success      200   {object}  domain.ResourceRequirement
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/resource-requirements/{id} [put]
func (h *RequirementHandler) Update(c echo.Context) error {
	var req ports.RequirementInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	requirement, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, requirement)
}

// UpdateStatus handles PATCH /api/admin/resource-requirements/:id/status.
//
// @Summary      Change a resource requirement status
// @Tags         requirements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Requirement id"
// @Param        body  body      requirementStatusRequest  true  "New status"
// @Success      200   {object}  domain.ResourceRequirement
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/resource-requirements/{id}/status [patch]
func (h *RequirementHandler) UpdateStatus(c echo.Context) error {
	var req requirementStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	requirement, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, requirement)
}

// Delete handles DELETE /api/admin/resource-requirements/:id.
//
// @Summary      Delete a resource requirement
// @Tags         requirements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Requirement id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/resource-requirements/{id} [delete]
func (h *RequirementHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "requirement deleted")
}
