package domain

import "time"

// NotificationStatus represents the delivery state of an outbound message.
// The progression is one-way: QUEUED → SENDING → DELIVERED.
// FAILED is a declared terminal state with no producer in the simulated
// gateway; it becomes reachable once a real transport is attached.
type NotificationStatus string

const (
	NotificationQueued    NotificationStatus = "QUEUED"
	NotificationSending   NotificationStatus = "SENDING"
	NotificationDelivered NotificationStatus = "DELIVERED"
	NotificationFailed    NotificationStatus = "FAILED"
)

// NotificationRecord is one entry of the outbound message log.
// Records are owned by the notification gateway and read-only to every
// other component once created.
type NotificationRecord struct {
	ID        string
	To        string
	Message   string
	Link      string
	Status    NotificationStatus
	CreatedAt time.Time
}
