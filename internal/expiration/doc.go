// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package expiration derives the remaining-life state of a food record.
//
// All arithmetic works on civil dates pinned to UTC midnight, so adding a
// shelf life never drifts across daylight-saving or timezone boundaries.
// The package is pure: the caller supplies "now".
//
// Thresholds are product-visible and fixed:
//
//	daysLeft < 0        expired
//	0 <= daysLeft < 7   critical
//	7 <= daysLeft < 30  warning
//	daysLeft >= 30      ok
package expiration
