package guard

import (
	"sync"
	"time"

	"cofau/internal/domain"
)

// RouteGroup is the coarse navigation bucket a screen belongs to.
type RouteGroup string

const (
	// GroupAuth holds the login and signup screens.
	GroupAuth RouteGroup = "auth"
	// GroupApp holds everything behind authentication.
	GroupApp RouteGroup = "app"
)

// Decision is what the guard wants the router to do.
type Decision int

const (
	RedirectNone Decision = iota
	RedirectLogin
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case RedirectNone:
		return "none"
	case RedirectLogin:
		return "login"
	case RedirectHome:
		return "home"
	}
	return "unknown"
}

// Evaluate maps session state and the current route group to a redirect.
// While the session is still loading it never redirects.
func Evaluate(state domain.SessionState, group RouteGroup) Decision {
	switch state {
	case domain.StateLoading:
		return RedirectNone
	case domain.StateUnauthenticated:
		if group != GroupAuth {
			return RedirectLogin
		}
	case domain.StateAuthenticated:
		if group == GroupAuth {
			return RedirectHome
		}
	}
	return RedirectNone
}

// settleDelay gives the router a beat to finish its own transition before a
// redirect is applied.
const settleDelay = 50 * time.Millisecond

// Watcher observes session-state changes and applies redirect decisions
// through a callback. Each observation supersedes the previous one: a timer
// still pending when a newer state arrives is cancelled.
//
// The one-shot CLI gates commands with Evaluate directly; Watcher is for
// long-lived hosts (a shell mode or an embedding UI) that react to the
// session as it changes.
type Watcher struct {
	apply func(Decision)
	delay time.Duration

	mu      sync.Mutex
	group   RouteGroup
	pending *time.Timer
}

// NewWatcher starts with the given route group; apply receives only non-None
// decisions.
func NewWatcher(group RouteGroup, apply func(Decision)) *Watcher {
	return &Watcher{apply: apply, delay: settleDelay, group: group}
}

// SetRouteGroup records a navigation and re-evaluates on the next Observe.
func (w *Watcher) SetRouteGroup(group RouteGroup) {
	w.mu.Lock()
	w.group = group
	w.mu.Unlock()
}

// Observe schedules the decision for state after the settle delay.
func (w *Watcher) Observe(state domain.SessionState) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}

	d := Evaluate(state, w.group)
	if d == RedirectNone {
		return
	}
	w.pending = time.AfterFunc(w.delay, func() {
		w.apply(d)
	})
}

// Stop cancels any pending redirect.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
}
