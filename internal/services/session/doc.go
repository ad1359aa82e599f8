// Package session owns the client session lifecycle.
//
// It restores a persisted token on startup, performs login and logout against
// the backend, and exposes the current state to the navigation guard and the
// screens. State moves loading -> {authenticated, unauthenticated} and only
// changes again on login or logout.
package session
