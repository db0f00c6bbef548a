package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyResponse  = errors.New("empty response body")
	ErrDecodeResponse = errors.New("cannot decode response body")
	ErrTransport      = errors.New("transport failure")
)

// ResponseError is returned for every non-2xx response. Message holds the
// backend's `error` field and is empty when the body was not the documented
// JSON error object.
type ResponseError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.Err, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// Message extracts the backend-provided message from err, if any.
func Message(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}
