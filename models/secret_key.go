// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Secret-key providers known to the backend's recognition service.
const (
	ProviderKimi   = "kimi"
	ProviderOpenAI = "openai"
	ProviderTongyi = "tongyi"
)

// EnabledProviders lists the providers a user may currently register a key
// for. OpenAI and Tongyi are recognised by name but not offered yet.
var EnabledProviders = []string{ProviderKimi}

// SecretKey is an opaque third-party credential forwarded to the backend,
// which uses it for image recognition. The client holds no validation or
// decryption logic for it.
type SecretKey struct {
	UserID    int64  `json:"userId" validate:"required"`
	Provider  string `json:"provider" validate:"required,enabled_provider"`
	SecretKey string `json:"secretKey" validate:"required"`
}
