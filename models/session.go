package models

import "time"

// LocalSession is the last logged-in user remembered on this device, so the
// client can skip the login screen on the next start.
type LocalSession struct {
	UserID     int64
	Username   string
	LoggedInAt time.Time
}

// User returns the session's user.
func (s LocalSession) User() User {
	return User{ID: s.UserID, Username: s.Username}
}
