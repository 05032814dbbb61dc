package dto

import (
	"time"

	"messagely/internal/api/models"
)

// NotificationResponse: one unread-message notification
type NotificationResponse struct {
	ID           int64     `json:"id"`
	MessageID    int64     `json:"message_id"`
	FromUsername string    `json:"from_username,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromModelsToNotificationResponses(notifications []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp := NotificationResponse{
			ID:        n.ID,
			MessageID: n.MessageID,
			CreatedAt: n.CreatedAt,
		}
		if n.Message != nil {
			resp.FromUsername = n.Message.FromUsername
		}
		out = append(out, resp)
	}
	return out
}
