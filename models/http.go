package models

// ErrorResponse is the JSON error body every backend endpoint returns on
// failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
