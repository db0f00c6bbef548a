package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is the header every outbound request carries so client log
// entries can be matched with backend logs.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client with the given base URL and a
// per-request timeout. Every request gets an [RequestIDHeader] unless the
// caller already set one, taken from the request context when present.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := RequestIDFromContext(req.Context())
		if !ok {
			id = NewRequestID()
		}
		req.SetHeader(RequestIDHeader, id)
		return nil
	})

	return &HTTPClient{Client: client}
}
