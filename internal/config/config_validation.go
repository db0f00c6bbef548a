// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"strings"

	"github.com/MKhiriev/fresh-alert/models"
)

// validate checks that the merged [StructuredConfig] is usable. A negative
// timeout is the only thing that can be wrong before projection.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.LogFile == "" || !slices.Contains(models.EnabledProviders, cfg.App.SecretKeyProvider) {
		return ErrInvalidAppConfigs
	}

	return nil
}
