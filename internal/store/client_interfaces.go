package store

import (
	"context"

	"github.com/MKhiriev/fresh-alert/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository remembers the last logged-in user between runs. At most
// one session is stored; Save replaces it.
type SessionRepository interface {
	Save(ctx context.Context, session models.LocalSession) error
	Get(ctx context.Context) (models.LocalSession, error)
	Delete(ctx context.Context) error
}
