// Package session holds the client's logged-in state and the food list shown
// to the user.
//
// A [Session] moves between [LoggedOut] and [LoggedIn]. Backend failures never
// move it: a failed login leaves it logged out with an empty list, a failed
// list fetch after a successful login leaves it logged in, and a failed
// delete keeps the record in the list.
package session
