package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/services"
	"github.com/singhrahul7988/Recruit-Sage/internal/middleware"
)

// JobController handles placement drive endpoints
type JobController struct {
	jobService *services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// Create posts a new drive to a partner college
// @Summary Create a job drive
// @Description Creates an Open drive; requires an Active partnership with the target college
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Drive details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid field value"
// @Failure 403 {object} dto.ErrorResponse "No active partnership with the college"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /jobs/create [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	company := middleware.CurrentUser(ctx)
	resp, err := c.jobService.CreateJob(ctx.Request.Context(), company, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListCompanyJobs lists a company's own drives
// @Summary List a company's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param companyId path int true "Company ID"
// @Success 200 {array} dto.JobResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not the owning company"
// @Router /jobs/company/{companyId} [get]
func (c *JobController) ListCompanyJobs(ctx *gin.Context) {
	companyID, err := parseIDParam(ctx, "companyId")
	if err != nil {
		return
	}

	caller := middleware.CurrentUser(ctx)
	resp, err := c.jobService.ListCompanyJobs(ctx.Request.Context(), caller, companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Get returns one drive
// @Summary Get a job
// @Description Returns one drive to the owning company, the target college, or the college's staff and students
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 403 {object} dto.ErrorResponse "Caller has no relationship to this job"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) Get(ctx *gin.Context) {
	jobID, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	caller := middleware.CurrentUser(ctx)
	resp, err := c.jobService.GetJob(ctx.Request.Context(), caller, jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Feed lists the Open drives targeting a college
// @Summary List a college's job feed
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Success 200 {array} dto.JobResponse
// @Failure 403 {object} dto.ErrorResponse "Caller does not belong to this college"
// @Router /jobs/feed/{collegeId} [get]
func (c *JobController) Feed(ctx *gin.Context) {
	collegeID, err := parseIDParam(ctx, "collegeId")
	if err != nil {
		return
	}

	caller := middleware.CurrentUser(ctx)
	resp, err := c.jobService.ListCollegeFeed(ctx.Request.Context(), caller, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
