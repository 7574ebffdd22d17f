package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/services"
	"github.com/singhrahul7988/Recruit-Sage/internal/middleware"
)

// NotificationController exposes the caller's notification inbox
type NotificationController struct {
	notificationService *services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// List returns the caller's notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.NotificationResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	caller := middleware.CurrentUser(ctx)
	resp, err := c.notificationService.List(ctx.Request.Context(), caller.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// MarkAllRead marks every notification of the caller as read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /notifications/read [put]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	caller := middleware.CurrentUser(ctx)
	if err := c.notificationService.MarkAllRead(ctx.Request.Context(), caller.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "All notifications marked as read"})
}
