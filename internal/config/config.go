// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file. The terminal UI owns stdout,
	// so logs never go there.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// SecretKeyProvider is the provider preselected on the account screen.
	// Env: APP_SECRET_KEY_PROVIDER
	SecretKeyProvider string `env:"SECRET_KEY_PROVIDER"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the backend HTTP adapter.
type Adapter struct {
	// HTTPAddress is the backend base address, either "host:port" or a full
	// URL such as "http://localhost:5000". The /api prefix is appended by the
	// adapter.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values applied before any other source.
const (
	DefaultHTTPAddress       = "http://localhost:5000"
	DefaultRequestTimeout    = 15 * time.Second
	DefaultDSN               = "fresh-alert.db"
	DefaultLogFile           = "fresh-alert.log"
	DefaultSecretKeyProvider = "kimi"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:           DefaultLogFile,
			SecretKeyProvider: DefaultSecretKeyProvider,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources, using the process command line for flags.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
