package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/fresh-alert/internal/adapter"
	"github.com/MKhiriev/fresh-alert/internal/utils"
	"github.com/MKhiriev/fresh-alert/internal/validators"
	"github.com/MKhiriev/fresh-alert/models"
)

type clientAuthService struct {
	adapter   adapter.BackendAdapter
	validator validators.Validator
}

func NewClientAuthService(backend adapter.BackendAdapter, validator validators.Validator) ClientAuthService {
	return &clientAuthService{adapter: backend, validator: validator}
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	creds, err := a.credentials(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.User{}, mapAdapterError(ErrAuth, MsgLoginFailed, err)
	}

	return user, nil
}

func (a *clientAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	creds, err := a.credentials(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Register(ctx, creds)
	if err != nil {
		return models.User{}, mapAdapterError(ErrAuth, MsgRegistrationFailed, err)
	}

	return user, nil
}

// credentials validates the plaintext pair and returns it with the password
// replaced by its digest.
func (a *clientAuthService) credentials(ctx context.Context, username, password string) (models.Credentials, error) {
	creds := models.Credentials{Username: strings.TrimSpace(username), Password: password}
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Credentials{}, &ValidationError{Err: err}
	}

	creds.Password = utils.LegacyPasswordDigest(password)
	return creds, nil
}

func (a *clientAuthService) ChangePassword(ctx context.Context, userID int64, newPassword, confirmation string) error {
	if newPassword == "" || confirmation == "" {
		return &ValidationError{Err: ErrEmptyPassword}
	}
	if newPassword != confirmation {
		return &ValidationError{Err: ErrPasswordMismatch}
	}

	req := models.ChangePasswordRequest{UserID: userID, NewPassword: newPassword}
	if err := a.validator.Validate(ctx, req); err != nil {
		return &ValidationError{Err: err}
	}
	req.NewPassword = utils.LegacyPasswordDigest(newPassword)

	if err := a.adapter.ChangePassword(ctx, req); err != nil {
		return mapAdapterError(ErrAuth, MsgChangePasswordFailed, err)
	}

	return nil
}

func (a *clientAuthService) AddSecretKey(ctx context.Context, userID int64, provider, secretKey string) error {
	key := models.SecretKey{
		UserID:    userID,
		Provider:  strings.TrimSpace(provider),
		SecretKey: strings.TrimSpace(secretKey),
	}
	if err := a.validator.Validate(ctx, key); err != nil {
		return &ValidationError{Err: err}
	}

	if err := a.adapter.AddSecretKey(ctx, key); err != nil {
		return mapAdapterError(ErrAuth, MsgAddSecretKeyFailed, err)
	}

	return nil
}
