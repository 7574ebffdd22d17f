package dto

import (
	"time"

	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
)

// NotificationResponse represents a notification returned to clients
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewNotificationResponse maps a notification model to its client
// representation
func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Detail:    n.Detail,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
