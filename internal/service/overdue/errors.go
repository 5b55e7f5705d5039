package overdue

import "errors"

var (
	// ErrInternal is returned on repository failures during a scan
	ErrInternal = errors.New("overdue: internal error")
)
