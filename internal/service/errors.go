package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/fresh-alert/internal/validators"
)

var (
	// ErrValidation marks input rejected before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrNetwork marks a non-2xx response or a transport failure.
	ErrNetwork = errors.New("backend request failed")

	ErrAuth = errors.New("auth request failed")
	ErrFood = errors.New("food request failed")

	ErrRecognitionIncomplete = errors.New("recognition returned no usable fields")

	ErrEmptyPassword    = validators.ErrEmptyPassword
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyImage       = errors.New("image is required")
)

// User-facing fallback messages used when the backend gives no `error` text.
const (
	MsgLoginFailed          = "Login failed"
	MsgRegistrationFailed   = "Registration failed"
	MsgChangePasswordFailed = "Failed to change password"
	MsgAddSecretKeyFailed   = "Failed to add secret key"
	MsgFetchFoodsFailed     = "Failed to fetch foods"
	MsgAddFoodFailed        = "Failed to add food"
	MsgDeleteFoodFailed     = "Failed to delete food"

	MsgRecognitionFailedPrefix = "Food recognition failed: "
	MsgRecognitionIncomplete   = MsgRecognitionFailedPrefix + "could not recognise name, production date or shelf life"
)

// ValidationError wraps the precise cause of a rejected input. It matches
// both [ErrValidation] and the cause.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrValidation, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// GatewayError is returned for every failed backend call. It matches
// [ErrNetwork], its Kind ([ErrAuth] or [ErrFood]) and the adapter error.
type GatewayError struct {
	Kind    error
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *GatewayError) Unwrap() []error {
	return []error{e.Kind, ErrNetwork, e.Err}
}
