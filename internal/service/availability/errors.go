package availability

import "errors"

var (
	// ErrInternal is returned on repository failures during resolution
	ErrInternal = errors.New("availability: internal error")
)
