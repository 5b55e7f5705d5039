package list_notifications

import (
	"time"

	"github.com/labcentral/facility-service/internal/domain"
)

// NotificationResponse HTTP response model
type NotificationResponse struct {
	ID        string `json:"id"`
	To        string `json:"to"`
	Message   string `json:"message"`
	Link      string `json:"link"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// NotificationListResponse HTTP response model, newest first
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// FromDomain converts one record into the HTTP response model
func FromDomain(rec *domain.NotificationRecord) NotificationResponse {
	return NotificationResponse{
		ID:        rec.ID,
		To:        rec.To,
		Message:   rec.Message,
		Link:      rec.Link,
		Status:    string(rec.Status),
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}
