package session

import "errors"

// ErrNotLoggedIn is returned by operations that need a user while the
// session is logged out.
var ErrNotLoggedIn = errors.New("you must be logged in")
