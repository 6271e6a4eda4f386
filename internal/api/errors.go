package api

import (
	"errors"
	"fmt"
)

// Error is an application-level failure: the upstream answered with a non-2xx
// status and, usually, an {error} body. Transport failures stay plain errors.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.Status)
	}
	return e.Message
}

// UserMessage extracts the server-supplied message from err, falling back to
// the given generic one for transport failures and bodiless errors.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
