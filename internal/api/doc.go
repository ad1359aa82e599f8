// Package api provides the HTTP implementation of the domain.APIClient
// interface used by cofau.
//
// The backend is a plain REST service: JSON over HTTPS with a bearer token in
// the Authorization header. This package offers a concrete client for every
// screen endpoint:
//   - Logging in and fetching the current account.
//   - The feed and the happening (stories) screens.
//   - Chat list and the live chat stream.
//   - Leaderboards, search, story upload, and profiles.
//
// All requests accept a context for cancellation and deadlines and carry a
// per-request UUID in X-Request-ID. Non-2xx statuses are returned as errors
// with the HTTP method, full URL, and status text to aid diagnostics.
package api
