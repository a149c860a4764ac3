package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// ClientHandler handles HTTP requests for consultancy clients.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /api/admin/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.ClientInput  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req ports.ClientInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, client)
}

// Get handles GET /api/admin/clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Client id"
// @Success      200 {object}  domain.Client
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, client)
}

// List handles GET /api/admin/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Param        search  query     string  false  "Match against name, company or email"
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  ports.Page[domain.Client]
// @Failure      400     {object}  map[string]string
// @Router       /api/admin/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	filter := ports.ClientFilter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
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

// ListActive handles GET /api/admin/clients/active.
//
// @Summary      List active clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Client
// @Router       /api/admin/clients/active [get]
func (h *ClientHandler) ListActive(c echo.Context) error {
	clients, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, clients)
}

// Update handles PUT /api/admin/clients/:id.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Client id"
// @Param        body  body      ports.ClientInput  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req ports.ClientInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, client)
}

// Delete handles DELETE /api/admin/clients/:id. Removes the client together
// with its contracts and resource requirements.
//
// @Summary      Delete a client and its dependents
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "client deleted")
}

// ToggleStatus handles PATCH /api/admin/clients/:id/toggle-status.
//
// @Summary      Flip a client between active and inactive
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Client id"
// @Success      200 {object}  domain.Client
// @Failure      404 {object}  map[string]string
// @Failure      409 {object}  map[string]string
// @Router       /api/admin/clients/{id}/toggle-status [patch]
func (h *ClientHandler) ToggleStatus(c echo.Context) error {
	client, err := h.service.ToggleStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, client)
}
