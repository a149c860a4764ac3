package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

// FeedbackHandler handles public feedback submission and its moderation.
type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type approveFeedbackRequest struct {
	Role string `json:"role,omitempty"`
}

// Submit handles POST /api/feedback — the public submission endpoint.
//
// @Summary      Submit website feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      ports.FeedbackInput  true  "Feedback"
// @Success      201   {object}  domain.Feedback
// @Failure      400   {object}  map[string]string
// @Router       /api/feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req ports.FeedbackInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	feedback, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, feedback)
}

// List handles GET /api/admin/feedback.
//
// @Summary      List feedback entries
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Param        status  query     string  false  "Filter by status (pending, approved, rejected)"
// @Success      200     {object}  ports.Page[domain.Feedback]
// @Failure      400     {object}  map[string]string
// @Router       /api/admin/feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	pageReq, err := pageFromQuery(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), c.QueryParam("status"), pageReq)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, page)
}

// Approve handles POST /api/admin/feedback/:id/approve. Marks the feedback
// approved and publishes it as a testimonial in one atomic step; a second
// approval of the same entry returns 409.
//
// @Summary      Approve feedback and publish it as a testimonial
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true   "Feedback id"
// @Param        body  body      approveFeedbackRequest  false  "Optional author role shown on the testimonial"
// @Success      201   {object}  domain.Testimonial
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/feedback/{id}/approve [post]
func (h *FeedbackHandler) Approve(c echo.Context) error {
	var req approveFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	testimonial, err := h.service.Approve(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, testimonial)
}

// Reject handles POST /api/admin/feedback/:id/reject.
//
// @Summary      Reject feedback
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Feedback id"
// @Success      200 {object}  domain.Feedback
// @Failure      404 {object}  map[string]string
// @Failure      409 {object}  map[string]string
// @Router       /api/admin/feedback/{id}/reject [post]
func (h *FeedbackHandler) Reject(c echo.Context) error {
	feedback, err := h.service.Reject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, feedback)
}
