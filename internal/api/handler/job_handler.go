package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	jobs ports.JobService
	apps ports.ApplicationService
}

func NewJobHandler(jobs ports.JobService, apps ports.ApplicationService) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps}
}

// Search handles GET /api/jobs — the public job search.
//
// @Summary      Search open jobs
// @Tags         jobs
// @Produce      json
// @Param        q                query     string  false  "Full-text query over title/description/company"
// @Param        location         query     string  false  "Location substring, case-insensitive"
// @Param        is_remote        query     bool    false  "Remote filter"
// @Param        salary_min       query     int     false  "Minimum acceptable salary ceiling"
// @Param        employment_type  query     string  false  "full-time | part-time | contract | internship"
// @Param        sort             query     string  false  "date (default) or relevance (requires q)"
// @Success      200              {object}  envelope
// @Router       /api/jobs [get]
func (h *JobHandler) Search(c echo.Context) error {
	var q searchJobsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.jobs.Search(c.Request().Context(), toSearchFilter(q))
	if err != nil {
		return err
	}
	return respondPaged(c, http.StatusOK, toJobListResponse(result.Items),
		result.Page, result.Limit, result.Total, result.TotalPages)
}

// Get handles GET /api/jobs/:id.
//
// @Summary      Get a job with its applicant count
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	detail, err := h.jobs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toJobDetailResponse(detail))
}

// Create handles POST /api/jobs.
//
// @Summary      Publish a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Posting details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobs.Create(c.Request().Context(), toCreateJobInput(req, userID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toJobResponse(job))
}

// Update handles PUT /api/jobs/:id.
//
// @Summary      Update an owned posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobs.Update(c.Request().Context(), toUpdateJobInput(req, c.Param("id"), userID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toJobResponse(job))
}

// Close handles DELETE /api/jobs/:id — a one-way soft delete.
//
// @Summary      Close an owned posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Close(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.jobs.Close(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"message": "job closed successfully"})
}

// ListOwn handles GET /api/jobs/employer/jobs.
//
// @Summary      List the employer's own postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "open or closed"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  envelope
// @Router       /api/jobs/employer/jobs [get]
func (h *JobHandler) ListOwn(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, limit := pageParams(c)
	result, err := h.jobs.ListOwn(c.Request().Context(), userID, c.QueryParam("status"), page, limit)
	if err != nil {
		return err
	}
	return respondPaged(c, http.StatusOK, toJobDetailListResponse(result.Items),
		result.Page, result.Limit, result.Total, result.TotalPages)
}

// ListApplicants handles GET /api/jobs/:id/applications.
//
// @Summary      List applications for an owned posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true   "Job id"
// @Param        status  query     string  false  "Filter by application status"
// @Success      200     {object}  envelope
// @Failure      403     {object}  envelope
// @Failure      404     {object}  envelope
// @Router       /api/jobs/{id}/applications [get]
func (h *JobHandler) ListApplicants(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, limit := pageParams(c)
	result, err := h.apps.ListByJob(c.Request().Context(), c.Param("id"), userID, c.QueryParam("status"), page, limit)
	if err != nil {
		return err
	}
	return respondPaged(c, http.StatusOK, toApplicationListResponse(result.Items),
		result.Page, result.Limit, result.Total, result.TotalPages)
}
