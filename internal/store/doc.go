// Package store persists the client session on disk.
//
// The session (bearer token plus current user) is sealed into a
// passphrase-encrypted JSON blob so a stolen config directory does not leak
// the token. Writes go through a temp file and rename.
package store
