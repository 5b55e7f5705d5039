package assistant

import "errors"

var (
	// ErrInternal is returned on client-side failures (request build, transport)
	ErrInternal = errors.New("assistant client: internal error")

	// ErrInvalidResponse is returned when the advisory service answers
	// with an unexpected status or body
	ErrInvalidResponse = errors.New("assistant client: invalid response")

	// ErrEmptyAnswer is returned when the advisory service produced no text
	ErrEmptyAnswer = errors.New("assistant client: empty answer")
)
