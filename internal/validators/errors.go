package validators

import (
	"errors"

	"github.com/MKhiriev/fresh-alert/internal/expiration"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidUserID = errors.New("user is not set")

	ErrEmptyName             = errors.New("name is required")
	ErrInvalidProductionDate = errors.New("production date must be in YYYY-MM-DD format")
	ErrNegativeShelfLife     = expiration.ErrNegativeShelfLife

	ErrEmptyProvider       = errors.New("provider is required")
	ErrUnsupportedProvider = errors.New("provider is not supported")
	ErrEmptySecretKey      = errors.New("secret key is required")
)
