package get_banner

import (
	notificationsService "github.com/labcentral/facility-service/internal/service/notifications"
)

// BannerResponse HTTP response model
type BannerResponse struct {
	RecordID string `json:"recordId"`
	To       string `json:"to"`
	Message  string `json:"message"`
	Link     string `json:"link"`
	Status   string `json:"status"`
}

// FromServiceBanner converts the gateway banner into the HTTP response
func FromServiceBanner(b *notificationsService.Banner) *BannerResponse {
	return &BannerResponse{
		RecordID: b.RecordID,
		To:       b.To,
		Message:  b.Message,
		Link:     b.Link,
		Status:   string(b.Status),
	}
}
