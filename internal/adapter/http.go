package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fresh-alert/internal/config"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/internal/utils"
	"github.com/MKhiriev/fresh-alert/models"
	"github.com/go-resty/resty/v2"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	h := &httpBackendAdapter{client: client, logger: logger}

	client.SetLogger(logger)
	client.OnAfterResponse(h.logResponse)
	client.OnError(h.logError)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [BackendAdapter].
func (h *httpBackendAdapter) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/api/login")

	if err != nil {
		return models.User{}, requestError("login", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if isEmptyBody(resp) || user.ID == 0 {
		return models.User{}, fmt.Errorf("login: %w", ErrEmptyResponse)
	}

	return user, nil
}

// Register implements [BackendAdapter].
func (h *httpBackendAdapter) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/api/register")

	if err != nil {
		return models.User{}, requestError("register", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if isEmptyBody(resp) || user.ID == 0 {
		return models.User{}, fmt.Errorf("register: %w", ErrEmptyResponse)
	}

	return user, nil
}

// ChangePassword implements [BackendAdapter].
func (h *httpBackendAdapter) ChangePassword(ctx context.Context, body models.ChangePasswordRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/change-password")
	if err != nil {
		return requestError("change password", resp, err)
	}

	return mapHTTPError(resp)
}

// AddSecretKey implements [BackendAdapter].
func (h *httpBackendAdapter) AddSecretKey(ctx context.Context, key models.SecretKey) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(key).
		Post("/api/add-secret-key")
	if err != nil {
		return requestError("add secret key", resp, err)
	}

	return mapHTTPError(resp)
}

// ListFoods implements [BackendAdapter]. A JSON null counts as an empty
// response; an empty array is a valid empty list.
func (h *httpBackendAdapter) ListFoods(ctx context.Context, userID int64) ([]models.Food, error) {
	var foods []models.Food

	resp, err := h.request(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&foods).
		Get("/api/foods")

	if err != nil {
		return nil, requestError("list foods", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if isEmptyBody(resp) || foods == nil {
		return nil, fmt.Errorf("list foods: %w", ErrEmptyResponse)
	}

	return foods, nil
}

// AddFood implements [BackendAdapter]. The image part is attached only when
// food.Image is set.
func (h *httpBackendAdapter) AddFood(ctx context.Context, food models.NewFood) (models.Food, error) {
	var created models.Food

	req := h.request(ctx).
		SetMultipartFormData(map[string]string{
			"name":           food.Name,
			"productionDate": food.ProductionDate,
			"shelfLife":      strconv.Itoa(food.ShelfLife),
			"userId":         strconv.FormatInt(food.UserID, 10),
		}).
		SetResult(&created)
	if food.Image != nil {
		req.SetFileReader("image", food.Image.Filename, bytes.NewReader(food.Image.Content))
	}

	resp, err := req.Post("/api/foods")
	if err != nil {
		return models.Food{}, requestError("add food", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Food{}, err
	}
	if isEmptyBody(resp) || created.ID == 0 {
		return models.Food{}, fmt.Errorf("add food: %w", ErrEmptyResponse)
	}

	return created, nil
}

// DeleteFood implements [BackendAdapter].
func (h *httpBackendAdapter) DeleteFood(ctx context.Context, id, userID int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		Delete("/api/foods/{id}")
	if err != nil {
		return requestError("delete food", resp, err)
	}

	return mapHTTPError(resp)
}

// RecognizeFood implements [BackendAdapter]. Any subset of the attributes
// may be missing; an empty object is returned as an empty result.
func (h *httpBackendAdapter) RecognizeFood(ctx context.Context, image models.Image, userID int64) (models.RecognitionResult, error) {
	var result models.RecognitionResult

	resp, err := h.request(ctx).
		SetMultipartFormData(map[string]string{
			"userId": strconv.FormatInt(userID, 10),
		}).
		SetFileReader("image", image.Filename, bytes.NewReader(image.Content)).
		SetResult(&result).
		Post("/api/recognize-food")

	if err != nil {
		return models.RecognitionResult{}, requestError("recognize food", resp, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecognitionResult{}, err
	}
	if isEmptyBody(resp) {
		return models.RecognitionResult{}, fmt.Errorf("recognize food: %w", ErrEmptyResponse)
	}

	return result, nil
}

// request starts a request bound to ctx. Bodies are always decoded as JSON,
// error bodies into [models.ErrorResponse].
func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetError(&models.ErrorResponse{})
}

// requestError classifies a failed call: no response at all is a transport
// failure, otherwise the 2xx body was empty or could not be decoded.
func requestError(op string, resp *resty.Response, err error) error {
	switch {
	case resp == nil || resp.RawResponse == nil:
		return fmt.Errorf("%s request: %w: %w", op, ErrTransport, err)
	case isEmptyBody(resp):
		return fmt.Errorf("%s request: %w", op, ErrEmptyResponse)
	default:
		return fmt.Errorf("%s request: %w: %w", op, ErrDecodeResponse, err)
	}
}

func (h *httpBackendAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Info().
		Str("method", resp.Request.Method).
		Str("path", requestPath(resp.Request)).
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend request")
	return nil
}

func (h *httpBackendAdapter) logError(req *resty.Request, err error) {
	h.logger.Err(err).
		Str("method", req.Method).
		Str("path", requestPath(req)).
		Str("request_id", req.Header.Get(utils.RequestIDHeader)).
		Dur("duration", time.Since(req.Time)).
		Msg("backend request failed")
}

func requestPath(req *resty.Request) string {
	if req.RawRequest != nil {
		return req.RawRequest.URL.Path
	}
	return req.URL
}
