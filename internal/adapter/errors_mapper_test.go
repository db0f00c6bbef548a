package adapter

import (
	"testing"

	"github.com/MKhiriev/fresh-alert/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	withError := func(v any) *resty.Response {
		return &resty.Response{Request: &resty.Request{Error: v}}
	}

	assert.Equal(t, "boom", errorMessage(withError(&models.ErrorResponse{Error: " boom "})))
	assert.Empty(t, errorMessage(withError(&models.ErrorResponse{})))
	assert.Empty(t, errorMessage(withError(nil)))
	assert.Empty(t, errorMessage(withError(map[string]string{"message": "boom"})))
	assert.Empty(t, errorMessage(&resty.Response{}))
}

func TestResponseError_Error(t *testing.T) {
	err := &ResponseError{StatusCode: 401, Message: "Invalid credentials", Err: ErrUnauthorized}
	assert.Equal(t, "http 401: unauthorized: Invalid credentials", err.Error())

	err = &ResponseError{StatusCode: 418, Err: ErrUnexpectedStatus}
	assert.Equal(t, "http 418: unexpected status", err.Error())
}
