// Package utils provides general-purpose helper utilities used across the
// client: the resty-based HTTP client, request identifiers carried in
// context, and the legacy password digest expected by the backend.
package utils
