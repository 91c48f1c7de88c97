package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devsolutions/intake-api/internal/api/metrics"
	"github.com/devsolutions/intake-api/internal/core/domain"
	"github.com/devsolutions/intake-api/internal/core/ports"
)

// AdminHandler handles the authenticated dashboard endpoints. Every route
// it serves sits behind the Auth and AdminGate middleware.
type AdminHandler struct {
	service ports.SubmissionService
}

func NewAdminHandler(service ports.SubmissionService) *AdminHandler {
	return &AdminHandler{service: service}
}

// List handles GET /v1/admin/submissions.
//
// All records are fetched once, newest first; the aggregates always cover
// the full snapshot. The optional status query narrows the returned items
// in memory ("all" or absent is a pass-through).
//
// @Summary      List submissions with dashboard aggregates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Exact status filter, or 'all'"
// @Success      200     {object}  listSubmissionsResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /v1/admin/submissions [get]
func (h *AdminHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /v1/admin/submissions/:id.
//
// @Summary      Get one submission
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  submissionResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/submissions/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	sub, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(sub))
}

// Update handles PATCH /v1/admin/submissions/:id — the review save. Only
// status and admin_notes are editable; everything else is immutable after
// creation. Saving identical values twice is harmless (last write wins).
//
// @Summary      Save a review (status and notes)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Submission ID"
// @Param        body  body      updateReviewRequest  true  "Review fields"
// @Success      200   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/submissions/{id} [patch]
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sub, err := h.service.SaveReview(c.Request().Context(), c.Param("id"), ports.ReviewInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) || errors.Is(err, domain.ErrInvalidStatus) {
			return err
		}
		// Store failure: surface the store's message so the detail view can
		// show it inline and keep the admin's edits intact.
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.ReviewSavesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, toSubmissionResponse(sub))
}

// Me handles GET /v1/admin/me — the caller's admin profile for the
// dashboard header.
//
// @Summary      Current admin profile
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminProfileResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/me [get]
func (h *AdminHandler) Me(c echo.Context) error {
	profile, err := ctxAdminProfile(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}
