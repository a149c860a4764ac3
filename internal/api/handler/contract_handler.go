package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

const defaultExpiryWindowDays = 30

// ContractHandler handles HTTP requests for client contracts.
type ContractHandler struct {
	service ports.ContractService
}

func NewContractHandler(service ports.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

type contractStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active completed terminated expired"`
}

// Create handles POST /api/admin/contracts.
//
// @Summary      Create a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ContractInput  true  "Contract details"
// @Success      201   {object}  domain.Contract
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/contracts [post]
func (h *ContractHandler) Create(c echo.Context) error {
	var req ports.ContractInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contract, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, contract)
}

// Get handles GET /api/admin/contracts/:id.
//
// @Summary      Get a contract by id
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Contract id"
// @Success      200 {object}  domain.Contract
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/contracts/{id} [get]
func (h *ContractHandler) Get(c echo.Context) error {
	contract, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contract)
}

// List handles GET /api/admin/contracts.
//
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Param        clientId  query     string  false  "Filter by owning client"
// @Param        status    query     string  false  "Filter by status"
// @Success      200       {object}  ports.Page[domain.Contract]
// @Failure      400       {object}  map[string]string
// @Router       /api/admin/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	filter := ports.ContractFilter{
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

// ListExpiring handles GET /api/admin/contracts/expiring.
//
// @Summary      List contracts expiring within a window
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        days  query     int  false  "Window in days from today (default 30)"
// @Success      200   {array}   domain.Contract
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/contracts/expiring [get]
func (h *ContractHandler) ListExpiring(c echo.Context) error {
	days := defaultExpiryWindowDays
	if raw := c.QueryParam("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a number")
		}
		days = v
	}

	contracts, err := h.service.ListExpiring(c.Request().Context(), days)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contracts)
}

// Update handles PUT /api/admin/contracts/:id.
//
// @Summary      Update a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Contract id"
// @Param        body  body      ports.ContractInput  true  "Contract details"
// @Success      200   {object}  domain.Contract
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/contracts/{id} [put]
func (h *ContractHandler) Update(c echo.Context) error {
	var req ports.ContractInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contract, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contract)
}

// UpdateStatus handles PATCH /api/admin/contracts/:id/status.
//
// @Summary      Change a contract status
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Contract id"
// @Param        body  body      contractStatusRequest  true  "New status"
// @Success      200   {object}  domain.Contract
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/contracts/{id}/status [patch]
func (h *ContractHandler) UpdateStatus(c echo.Context) error {
	var req contractStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contract, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, contract)
}

// Delete handles DELETE /api/admin/contracts/:id.
//
// @Summary      Delete a contract
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Contract id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/contracts/{id} [delete]
func (h *ContractHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "contract deleted")
}
