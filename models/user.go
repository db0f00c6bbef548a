// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the account returned by the backend on login or registration.
// It is replaced as a whole on re-login and never mutated by the client.
type User struct {
	// ID is the backend-assigned user identifier. Every food operation is
	// scoped by it.
	ID int64 `json:"id"`

	// Username is the login name, shown in the UI welcome line.
	Username string `json:"username"`
}

// Credentials is the JSON body of POST /api/login and POST /api/register.
//
// Password carries the client-side digest, never the plaintext the user typed.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest is the JSON body of POST /api/change-password.
type ChangePasswordRequest struct {
	UserID      int64  `json:"userId" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}
