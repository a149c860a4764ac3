package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// InquiryHandler handles public inquiry submission and back-office triage.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type markReadRequest struct {
	IsRead *bool `json:"is_read"`
}

// Submit handles POST /api/inquiries — the public contact form.
//
// @Summary      Submit a contact inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      ports.InquiryInput  true  "Inquiry"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req ports.InquiryInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.service.Submit(c.Request().Context(), req); err != nil {
		return err
	}
	return respondMessage(c, http.StatusCreated, "Thank you! We'll contact you within 24 hours.")
}

// List handles GET /api/admin/inquiries.
//
// @Summary      List contact inquiries
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int   false  "Page number (1-based)"
// @Param        limit   query     int   false  "Page size (max 100)"
// @Param        isRead  query     bool  false  "Filter by read marker"
// @Success      200     {object}  ports.Page[domain.Inquiry]
// @Failure      400     {object}  map[string]string
// @Router       /api/admin/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	var isRead *bool
	if raw := c.QueryParam("isRead"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isRead must be true or false")
		}
		isRead = &v
	}

	pageReq, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), isRead, pageReq)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, page)
}

// MarkRead handles PATCH /api/admin/inquiries/:id/read. An absent body
// field defaults to marking the inquiry read.
//
// @Summary      Flip the read marker on an inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true   "Inquiry id"
// @Param        body  body      markReadRequest  false  "Read marker"
// @Success      200   {object}  domain.Inquiry
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/inquiries/{id}/read [patch]
func (h *InquiryHandler) MarkRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	isRead := true
	if req.IsRead != nil {
		isRead = *req.IsRead
	}

	inquiry, err := h.service.MarkRead(c.Request().Context(), c.Param("id"), isRead)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, inquiry)
}

// Delete handles DELETE /api/admin/inquiries/:id.
//
// @Summary      Delete an inquiry
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Inquiry id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/admin/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "inquiry deleted")
}
