package service

import (
	"context"

	"github.com/MKhiriev/fresh-alert/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for account operations.
// Every method performs at most one backend round trip and never retries.
type ClientAuthService interface {
	// Login authenticates username with password. The password is digested
	// before it leaves the process. Returns the backend user record.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Register creates a new account and returns the stored user record.
	Register(ctx context.Context, username, password string) (models.User, error)

	// ChangePassword sets a new password for userID. The two entries are
	// compared locally first; an empty or mismatched pair never reaches the
	// backend.
	ChangePassword(ctx context.Context, userID int64, newPassword, confirmation string) error

	// AddSecretKey forwards an opaque provider credential for userID.
	AddSecretKey(ctx context.Context, userID int64, provider, secretKey string) error
}

// ClientFoodService defines the client-side contract for the food list.
type ClientFoodService interface {
	// ListFoods returns every record owned by userID with derived fields
	// recomputed against the current day, sorted by days left ascending.
	ListFoods(ctx context.Context, userID int64) ([]models.Food, error)

	// AddFood validates food and stores it. The returned record carries the
	// backend id and fresh derived fields.
	AddFood(ctx context.Context, food models.NewFood) (models.Food, error)

	// DeleteFood removes the record id owned by userID.
	DeleteFood(ctx context.Context, id, userID int64) error

	// RecognizeFood asks the backend to infer food attributes from image.
	// When nothing could be inferred the empty result is returned together
	// with [ErrRecognitionIncomplete].
	RecognizeFood(ctx context.Context, image models.Image, userID int64) (models.RecognitionResult, error)
}
