package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport failures: the request never completed.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized is matched by *APIError with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse is matched by *MalformedResponseError.
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a non-2xx response. Error returns Message unchanged so it can
// be shown to the user as is.
type APIError struct {
	StatusCode int
	Message    string
}

func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &APIError{StatusCode: status, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// MalformedResponseError is a 2xx response whose body could not be decoded
// or failed validation.
type MalformedResponseError struct {
	Op  string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}
