package client

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/fresh-alert/internal/config"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		App:     config.ClientApp{SecretKeyProvider: models.ProviderKimi},
		Adapter: config.ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
	}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.NoError(t, app.Close())
}

func TestNewApp_InvalidAddress(t *testing.T) {
	cfg := testConfig()
	cfg.Adapter.HTTPAddress = " "

	app, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_CloseWithoutStorage(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}
