// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// fresh-alert backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPBackendAdapter]).
//
// Non-2xx responses are mapped to the sentinel values defined in errors.go by
// mapHTTPError, wrapped in a [*ResponseError] that carries the backend's
// `error` message, so callers can use [errors.Is] and [errors.As] without
// looking at status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/fresh-alert/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines communication with the fresh-alert backend. Every
// method performs exactly one round trip with no retries.
type BackendAdapter interface {
	// Login posts credentials to POST /api/login and returns the user record.
	// creds.Password must already be digested by the caller.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Register posts credentials to POST /api/register and returns the newly
	// created user record.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// ChangePassword posts the new password digest to
	// POST /api/change-password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// AddSecretKey stores an opaque provider credential via
	// POST /api/add-secret-key.
	AddSecretKey(ctx context.Context, key models.SecretKey) error

	// ListFoods fetches every food record owned by userID from
	// GET /api/foods. An empty response body or HTTP 204 is reported as
	// [ErrEmptyResponse]; a JSON empty array is a valid empty list.
	ListFoods(ctx context.Context, userID int64) ([]models.Food, error)

	// AddFood submits food as multipart/form-data to POST /api/foods and
	// returns the stored record.
	AddFood(ctx context.Context, food models.NewFood) (models.Food, error)

	// DeleteFood removes the record with the given id via
	// DELETE /api/foods/{id}.
	DeleteFood(ctx context.Context, id, userID int64) error

	// RecognizeFood uploads image to POST /api/recognize-food and returns
	// whatever attributes the backend could infer.
	RecognizeFood(ctx context.Context, image models.Image, userID int64) (models.RecognitionResult, error)
}
