// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the wire and domain types shared by the fresh-alert
// client: users, food records, recognition results and the request payloads
// exchanged with the backend.
package models
