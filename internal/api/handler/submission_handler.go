package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devsolutions/intake-api/internal/api/metrics"
	"github.com/devsolutions/intake-api/internal/core/domain"
	"github.com/devsolutions/intake-api/internal/core/ports"
)

// SubmissionHandler handles the public intake endpoint.
type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Create handles POST /v1/submissions — the lead-intake form.
//
// @Summary      Submit project requirements
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                   false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createSubmissionRequest  true   "Project requirements"
// @Success      201              {object}  createSubmissionResponse
// @Success      200              {object}  createSubmissionResponse  "Idempotent replay of an earlier submission"
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /v1/submissions [post]
func (h *SubmissionHandler) Create(c echo.Context) error {
	var req createSubmissionRequest
	if err := c.Bind(&req); err != nil {
		metrics.SubmissionsRejectedTotal.WithLabelValues("invalid_payload").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SubmissionsRejectedTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	result, err := h.service.Create(c.Request().Context(), toCreateInput(req, idempotencyKey))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyDomain) {
			metrics.SubmissionsRejectedTotal.WithLabelValues("empty_domain").Inc()
			return err
		}
		// Store failure: surface the store's message verbatim so the form
		// can show it inline. The user's input is never persisted partially.
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	for _, d := range req.Domain {
		metrics.SubmissionsCreatedTotal.WithLabelValues(d).Inc()
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, toCreateResponse(result))
}

// IntakeOptions handles GET /v1/intake-options — the fixed display lists
// the form renders (domain tags, budget ranges, timelines) plus the status
// set used by the dashboard filter.
//
// @Summary      Intake form display options
// @Tags         submissions
// @Produce      json
// @Success      200  {object}  intakeOptionsResponse
// @Router       /v1/intake-options [get]
func (h *SubmissionHandler) IntakeOptions(c echo.Context) error {
	domains := make([]domainOptionResponse, len(domain.DomainOptions))
	for i, opt := range domain.DomainOptions {
		domains[i] = domainOptionResponse{ID: opt.ID, Label: opt.Label}
	}
	statuses := make([]string, len(domain.AllStatuses))
	for i, st := range domain.AllStatuses {
		statuses[i] = string(st)
	}

	return c.JSON(http.StatusOK, intakeOptionsResponse{
		Domains:      domains,
		BudgetRanges: domain.BudgetRanges,
		Timelines:    domain.TimelineOptions,
		Statuses:     statuses,
	})
}
