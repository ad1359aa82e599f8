// Package commands defines the cofau CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login        Sign in and persist the session
//   - logout       Clear the session
//   - whoami       Show the current account
//   - feed         Latest posts
//   - happening    Stories happening now
//   - leaderboard  Top contributors (users or restaurants)
//   - search       Search users, posts, or locations
//   - chat         Chat list and live stream
//   - story        Upload a story
//   - profile      Show a user's profile
//
// # Implementation
//
// The root command builds the dependency graph (store, services, API client)
// before any subcommand runs, restores the persisted session, and evaluates
// the navigation guard against the subcommand's route group: app screens
// refuse to run logged out, and login refuses to run logged in.
package commands
