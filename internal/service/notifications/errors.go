package notifications

import "errors"

var (
	// ErrGatewayStopped is returned when Send is called after Stop
	ErrGatewayStopped = errors.New("notifications: gateway stopped")

	// ErrInternal is returned on log failures
	ErrInternal = errors.New("notifications: internal error")
)
