package service

import (
	"time"

	"github.com/MKhiriev/fresh-alert/internal/adapter"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/internal/validators"
)

// Clock returns the current time. It is injected so derived food fields can
// be computed against a fixed day in tests.
type Clock func() time.Time

type ClientServices struct {
	AuthService ClientAuthService
	FoodService ClientFoodService
}

func NewClientServices(backend adapter.BackendAdapter, log *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()

	return &ClientServices{
		AuthService: NewClientAuthService(backend, validator),
		FoodService: NewClientFoodService(backend, validator, time.Now, log),
	}
}
