// Package guard keeps the visible route consistent with session state.
//
// Evaluate is the pure redirect matrix; Watcher applies it to a stream of
// state changes after a short settle delay, dropping a pending redirect when
// a newer state arrives.
package guard
