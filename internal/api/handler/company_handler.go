package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// CompanyHandler handles HTTP requests for partner companies.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create handles POST /api/admin/companies.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CompanyInput  true  "Company details"
// @Success      201   {object}  domain.Company
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req ports.CompanyInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	company, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, company)
}

// Get handles GET /api/admin/companies/:id.
//
// @Summary      Get a company by id
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Company id"
// @Success      200 {object}  domain.Company
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, company)
}

// List handles GET /api/admin/companies.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  ports.Page[domain.Company]
// @Failure      400    {object}  map[string]string
// @Router       /api/admin/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	pageReq, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), pageReq)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, page)
}

// Update handles PUT /api/admin/companies/:id.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Company id"
// @Param        body  body      ports.CompanyInput  true  "Company details"
// @Success      200   {object}  domain.Company
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req ports.CompanyInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	company, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, company)
}

// Delete handles DELETE /api/admin/companies/:id.
//
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Company id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "company deleted")
}
