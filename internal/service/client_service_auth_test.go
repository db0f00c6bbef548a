package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/fresh-alert/internal/adapter"
	"github.com/MKhiriev/fresh-alert/internal/mock"
	"github.com/MKhiriev/fresh-alert/internal/utils"
	"github.com/MKhiriev/fresh-alert/internal/validators"
	"github.com/MKhiriev/fresh-alert/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T) (ClientAuthService, *mock.MockBackendAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)

	return NewClientAuthService(mockAdapter, validators.NewFormValidator()), mockAdapter
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, models.Credentials{Username: "alice", Password: utils.LegacyPasswordDigest("secret")}).
		Return(models.User{ID: 1, Username: "alice"}, nil)

	user, err := svc.Login(ctx, " alice ", "secret")

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Username: "alice"}, user)
}

func TestClientAuthService_Login_BackendMessage(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	backendErr := &adapter.ResponseError{StatusCode: 401, Message: "Invalid credentials", Err: adapter.ErrUnauthorized}
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, backendErr)

	_, err := svc.Login(context.Background(), "alice", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", UserMessage(err))
}

func TestClientAuthService_Login_Fallback(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, adapter.ErrTransport)

	_, err := svc.Login(context.Background(), "alice", "pw")

	assert.Equal(t, MsgLoginFailed, UserMessage(err))
}

func TestClientAuthService_Login_EmptyFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), "  ", "pw")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyUsername)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().
		Register(gomock.Any(), models.Credentials{Username: "bob", Password: utils.LegacyPasswordDigest("pw")}).
		Return(models.User{ID: 2, Username: "bob"}, nil)

	user, err := svc.Register(context.Background(), "bob", "pw")

	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
}

func TestClientAuthService_Register_Fallback(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	backendErr := &adapter.ResponseError{StatusCode: 500, Err: adapter.ErrInternalServerError}
	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, backendErr)

	_, err := svc.Register(context.Background(), "bob", "pw")

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, MsgRegistrationFailed, UserMessage(err))
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestClientAuthService_ChangePassword_Success(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().
		ChangePassword(gomock.Any(), models.ChangePasswordRequest{UserID: 3, NewPassword: utils.LegacyPasswordDigest("new")}).
		Return(nil)

	assert.NoError(t, svc.ChangePassword(context.Background(), 3, "new", "new"))
}

func TestClientAuthService_ChangePassword_ValidatesBeforeNetwork(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		confirmation string
		wantErr      error
	}{
		{name: "both empty", wantErr: ErrEmptyPassword},
		{name: "confirmation empty", password: "a", wantErr: ErrEmptyPassword},
		{name: "password empty", confirmation: "a", wantErr: ErrEmptyPassword},
		{name: "mismatch", password: "a", confirmation: "b", wantErr: ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT: any adapter call fails the test
			svc, _ := newTestAuthSvc(t)

			err := svc.ChangePassword(context.Background(), 3, tt.password, tt.confirmation)

			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, errors.Is(err, ErrNetwork))
		})
	}
}

func TestClientAuthService_ChangePassword_Fallback(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Return(adapter.ErrTransport)

	err := svc.ChangePassword(context.Background(), 3, "x", "x")

	assert.Equal(t, MsgChangePasswordFailed, UserMessage(err))
}

// ── AddSecretKey ─────────────────────────────────────────────────────────────

func TestClientAuthService_AddSecretKey_Success(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().
		AddSecretKey(gomock.Any(), models.SecretKey{UserID: 3, Provider: models.ProviderKimi, SecretKey: "sk-1"}).
		Return(nil)

	assert.NoError(t, svc.AddSecretKey(context.Background(), 3, "kimi", " sk-1 "))
}

func TestClientAuthService_AddSecretKey_Validation(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	err := svc.AddSecretKey(context.Background(), 3, "kimi", "")
	assert.ErrorIs(t, err, validators.ErrEmptySecretKey)

	err = svc.AddSecretKey(context.Background(), 3, "openai", "sk")
	assert.ErrorIs(t, err, validators.ErrUnsupportedProvider)
	assert.Equal(t, "Provider is not supported", UserMessage(err))
}

func TestClientAuthService_AddSecretKey_Fallback(t *testing.T) {
	svc, mockAdapter := newTestAuthSvc(t)

	mockAdapter.EXPECT().AddSecretKey(gomock.Any(), gomock.Any()).Return(&adapter.ResponseError{StatusCode: 502, Err: adapter.ErrBadGateway})

	err := svc.AddSecretKey(context.Background(), 3, "kimi", "sk")

	assert.Equal(t, MsgAddSecretKeyFailed, UserMessage(err))
}
