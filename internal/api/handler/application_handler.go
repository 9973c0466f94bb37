package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brijesh-0/job-board-backend/internal/core/domain"
	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	apps ports.ApplicationService
}

func NewApplicationHandler(apps ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Apply handles POST /api/applications.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Application details"
// @Success      201   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /api/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.apps.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:       req.JobID,
		CandidateID: userID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toApplicationResponse(app))
}

// ListOwn handles GET /api/applications — the candidate's own applications.
//
// @Summary      List the candidate's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  envelope
// @Router       /api/applications [get]
func (h *ApplicationHandler) ListOwn(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, limit := pageParams(c)
	result, err := h.apps.ListByCandidate(c.Request().Context(), userID, c.QueryParam("status"), page, limit)
	if err != nil {
		return err
	}
	return respondPaged(c, http.StatusOK, toApplicationListResponse(result.Items),
		result.Page, result.Limit, result.Total, result.TotalPages)
}

// Withdraw handles PUT /api/applications/:id/withdraw.
//
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/applications/{id}/withdraw [put]
func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	app, err := h.apps.Withdraw(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toApplicationResponse(app))
}

// Transition handles PUT /api/applications/:id/status.
//
// @Summary      Move an application through the hiring pipeline
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Application id"
// @Param        body  body      transitionRequest  true  "Target status"
// @Success      200   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /api/applications/{id}/status [put]
func (h *ApplicationHandler) Transition(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.apps.Transition(c.Request().Context(), ports.TransitionInput{
		ApplicationID: c.Param("id"),
		EmployerID:    userID,
		Status:        domain.ApplicationStatus(req.Status),
		Note:          req.Note,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toApplicationResponse(app))
}
