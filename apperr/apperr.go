package apperr

import "errors"

// Sentinel errors the controllers translate to HTTP status codes.
// Everything that is not one of these surfaces as a 500.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}
