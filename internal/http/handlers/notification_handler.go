// README: Notification feed handlers: list, mark read, delete.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mishwar/internal/modules/notification"
	"mishwar/internal/types"
)

type NotificationHandler struct {
	notifications *notification.Service
}

func NewNotificationHandler(svc *notification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: svc}
}

type notificationResponse struct {
	ID            string    `json:"id"`
	RecipientID   string    `json:"recipient_id"`
	RecipientKind string    `json:"recipient_kind"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Category      string    `json:"category"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

func toNotificationResponse(n *notification.Notification) notificationResponse {
	return notificationResponse{
		ID:            string(n.ID),
		RecipientID:   string(n.RecipientID),
		RecipientKind: string(n.RecipientKind),
		Title:         n.Title,
		Message:       n.Message,
		Category:      n.Category,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		userID = c.GetString("userID")
	}
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	list, err := h.notifications.ListForUser(c.Request.Context(), types.ID(userID))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]notificationResponse, len(list))
	for i, n := range list {
		out[i] = toNotificationResponse(n)
	}
	writeJSON(c, http.StatusOK, gin.H{"count": len(out), "notifications": out})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing notification id")
		return
	}
	n, err := h.notifications.MarkRead(c.Request.Context(), types.ID(id))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toNotificationResponse(n))
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing notification id")
		return
	}
	if err := h.notifications.Delete(c.Request.Context(), types.ID(id)); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": true})
}
