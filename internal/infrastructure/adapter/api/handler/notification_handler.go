package handler

import (
	"net/http"

	"pocket-wallet/internal/infrastructure/adapter/notifier"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the recent-notification feed the toast surface
// polls.
type NotificationHandler struct {
	feed *notifier.Feed
}

// NewNotificationHandler creates a new notification handler instance
func NewNotificationHandler(feed *notifier.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// Recent handles GET /notifications
func (h *NotificationHandler) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.Recent())
}
