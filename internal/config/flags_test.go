package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:5000",
		"-request-timeout", "5s",
		"-d", "local.db",
		"-log-file", "client.log",
		"-provider", "kimi",
		"-config", "cfg.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "kimi", cfg.App.SecretKeyProvider)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := parseFlags([]string{"-request-timeout", "later"})
	require.Error(t, err)
}
