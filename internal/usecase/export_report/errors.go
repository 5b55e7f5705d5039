package export_report

import "errors"

var (
	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("export_report: internal error")
)
