package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/services"
	"github.com/singhrahul7988/Recruit-Sage/internal/middleware"
)

// NetworkController handles the partnership handshake endpoints
type NetworkController struct {
	networkService *services.NetworkService
	logger         zerolog.Logger
}

// NewNetworkController creates a new NetworkController
func NewNetworkController(networkService *services.NetworkService, logger zerolog.Logger) *NetworkController {
	return &NetworkController{
		networkService: networkService,
		logger:         logger,
	}
}

// Connect sends or reopens a partnership request
// @Summary Send a partnership request
// @Description Creates a pending partnership, or reopens a rejected one between the same pair
// @Tags network
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConnectRequest true "Recipient"
// @Success 200 {object} dto.PartnershipResponse "Rejected partnership reopened"
// @Success 201 {object} dto.PartnershipResponse "New request created"
// @Failure 400 {object} dto.ErrorResponse "Self-request, same-role pair, or already pending/active"
// @Failure 404 {object} dto.ErrorResponse "Recipient not found"
// @Router /network/connect [post]
func (c *NetworkController) Connect(ctx *gin.Context) {
	var req dto.ConnectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	caller := middleware.CurrentUser(ctx)
	resp, created, err := c.networkService.SendConnectionRequest(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, resp)
}

// GetNetwork lists the partnerships of a user
// @Summary List partnerships
// @Description Lists all partnerships of a user; staff may view their college's network
// @Tags network
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {array} dto.PartnershipResponse
// @Failure 403 {object} dto.ErrorResponse "Caller has no access to this network"
// @Router /network/requests/{userId} [get]
func (c *NetworkController) GetNetwork(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userId")
	if err != nil {
		return
	}

	caller := middleware.CurrentUser(ctx)
	resp, err := c.networkService.GetNetwork(ctx.Request.Context(), caller, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Respond records the recipient's decision on a pending request
// @Summary Respond to a partnership request
// @Description Sets a pending partnership to Active or Rejected; only the recipient may respond
// @Tags network
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RespondRequest true "Decision"
// @Success 200 {object} dto.PartnershipResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status or request already answered"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the recipient"
// @Failure 404 {object} dto.ErrorResponse "Partnership not found"
// @Router /network/respond [put]
func (c *NetworkController) Respond(ctx *gin.Context) {
	var req dto.RespondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return
	}

	caller := middleware.CurrentUser(ctx)
	resp, err := c.networkService.RespondToRequest(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SearchColleges lists every college account
// @Summary Search colleges
// @Tags network
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse "Students may not browse the directory"
// @Router /network/search-colleges [get]
func (c *NetworkController) SearchColleges(ctx *gin.Context) {
	caller := middleware.CurrentUser(ctx)
	resp, err := c.networkService.SearchColleges(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SearchCompanies lists every company account
// @Summary Search companies
// @Tags network
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse "Students may not browse the directory"
// @Router /network/search-companies [get]
func (c *NetworkController) SearchCompanies(ctx *gin.Context) {
	caller := middleware.CurrentUser(ctx)
	resp, err := c.networkService.SearchCompanies(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
