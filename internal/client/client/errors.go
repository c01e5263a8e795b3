package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotAuthenticated = errors.New("user not signed in")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("invalid response status: %d", e.StatusCode)
}

// Unwrap lets callers match auth and availability failures with errors.Is
// without inspecting the code themselves.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return nil
	}
}
