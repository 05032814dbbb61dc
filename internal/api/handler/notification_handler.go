package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"messagely/internal/api/dto"
	"messagely/internal/api/middleware"
	"messagely/internal/api/service"
	"messagely/pkg/apperror"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListUnread returns the caller's unread notifications.
// GET /notifications
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	notifications, err := h.notificationService.Unread(middleware.CurrentUsername(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": dto.FromModelsToNotificationResponses(notifications)})
}

// MarkRead marks one of the caller's notifications read.
// POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperror.NewValidationError("invalid notification id", err))
		return
	}

	if err := h.notificationService.MarkRead(middleware.CurrentUsername(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead marks everything in the caller's notification list read.
// POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(middleware.CurrentUsername(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
