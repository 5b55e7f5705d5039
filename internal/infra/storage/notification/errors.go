package notification

import "errors"

var (
	// ErrRecordNotFound is returned when the notification is not in the log
	ErrRecordNotFound = errors.New("notification.repository: record not found")
)
