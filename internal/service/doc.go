// Package service holds the client's gateways to the backend.
//
// [ClientAuthService] covers account operations and [ClientFoodService] the
// food list. Both validate input before any network call, perform a single
// round trip through [adapter.BackendAdapter] and translate failures into the
// error taxonomy in errors.go. [UserMessage] turns any of those errors into
// the text shown to the user.
package service
