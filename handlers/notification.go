package handlers

import (
	"net/http"

	"luxesalon/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the retained notification feed, most recent
// first.
type NotificationHandler struct {
	Log notification.EventLog
}

func NewNotificationHandler(log notification.EventLog) *NotificationHandler {
	return &NotificationHandler{Log: log}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.Log.Events()})
}
