// Package store is the client's local persistence layer.
//
// The only thing kept on disk is the last logged-in user, in a SQLite
// database whose schema is managed by the migrations package. Food data is
// never cached locally.
package store
