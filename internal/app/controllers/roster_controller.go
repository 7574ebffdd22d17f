package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/services"
	"github.com/singhrahul7988/Recruit-Sage/internal/middleware"
)

// RosterController handles a college's students and staff team
type RosterController struct {
	rosterService *services.RosterService
	logger        zerolog.Logger
}

// NewRosterController creates a new RosterController
func NewRosterController(rosterService *services.RosterService, logger zerolog.Logger) *RosterController {
	return &RosterController{
		rosterService: rosterService,
		logger:        logger,
	}
}

// AddStudent creates one student under the calling college
// @Summary Add a student
// @Description Creates a student account with a default password; the student must change it on first login
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddStudentRequest true "Student information"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or duplicate email"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a college"
// @Router /auth/add-student [post]
func (c *RosterController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	college := middleware.CurrentUser(ctx)
	resp, err := c.rosterService.AddStudent(ctx.Request.Context(), college, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// AddStudentsBulk creates many students, skipping duplicates
// @Summary Bulk-add students
// @Description Imports student rows, skipping invalid rows and duplicate emails
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkStudentsRequest true "Student rows"
// @Success 200 {object} dto.BulkStudentsResponse
// @Failure 400 {object} dto.ErrorResponse "No rows supplied"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a college"
// @Router /auth/add-students-bulk [post]
func (c *RosterController) AddStudentsBulk(ctx *gin.Context) {
	var req dto.BulkStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	college := middleware.CurrentUser(ctx)
	resp, err := c.rosterService.AddStudentsBulk(ctx.Request.Context(), college, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListStudents returns a college's roster
// @Summary List students
// @Description Lists the students of a college; visible to the college and its staff
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse "Caller has no access to this roster"
// @Router /auth/students/{collegeId} [get]
func (c *RosterController) ListStudents(ctx *gin.Context) {
	collegeID, err := parseIDParam(ctx, "collegeId")
	if err != nil {
		return
	}

	caller := middleware.CurrentUser(ctx)
	resp, err := c.rosterService.ListStudents(ctx.Request.Context(), caller, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteStudent removes a student owned by the calling college
// @Summary Delete a student
// @Description Removes a student; only the owning college may delete
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Student belongs to another college"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /auth/student/{id} [delete]
func (c *RosterController) DeleteStudent(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	college := middleware.CurrentUser(ctx)
	if err := c.rosterService.DeleteStudent(ctx.Request.Context(), college, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student removed successfully"})
}

// AddStaff creates a college_member account
// @Summary Add a staff member
// @Description Creates a college_member account with a default password
// @Tags roster
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddStaffRequest true "Staff information"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or duplicate email"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a college"
// @Router /auth/add-staff [post]
func (c *RosterController) AddStaff(ctx *gin.Context) {
	var req dto.AddStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	college := middleware.CurrentUser(ctx)
	resp, err := c.rosterService.AddStaff(ctx.Request.Context(), college, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListTeam returns a college's staff members
// @Summary List team members
// @Description Lists the staff of a college; visible to the college and its staff
// @Tags roster
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse "Caller has no access to this team"
// @Router /auth/team/{collegeId} [get]
func (c *RosterController) ListTeam(ctx *gin.Context) {
	collegeID, err := parseIDParam(ctx, "collegeId")
	if err != nil {
		return
	}

	caller := middleware.CurrentUser(ctx)
	resp, err := c.rosterService.ListTeam(ctx.Request.Context(), caller, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// parseIDParam reads a positive integer path parameter, writing a 400
// response on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid "+name+" parameter")))
		if err == nil {
			err = strconv.ErrRange
		}
		return 0, err
	}
	return id, nil
}
