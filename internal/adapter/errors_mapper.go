package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/fresh-alert/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		respErr.Err = ErrForbidden
	case http.StatusNotFound:
		respErr.Err = ErrNotFound
	case http.StatusConflict:
		respErr.Err = ErrConflict
	case http.StatusBadGateway:
		respErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.Err = ErrInternalServerError
	default:
		respErr.Err = ErrUnexpectedStatus
	}

	return respErr
}

// errorMessage returns the `error` field resty decoded from the error body,
// or "" when the body was empty, not JSON, or had no such field.
func errorMessage(resp *resty.Response) string {
	if resp.Request == nil {
		return ""
	}
	errResp, ok := resp.Error().(*models.ErrorResponse)
	if !ok || errResp == nil {
		return ""
	}
	return strings.TrimSpace(errResp.Error)
}

func isEmptyBody(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusNoContent || len(strings.TrimSpace(string(resp.Body()))) == 0
}
