package domain

import (
	"context"
	"io"
)

// SessionStore persists the session encrypted on disk.
type SessionStore interface {
	SaveSession(passphrase string, s Session) error
	// LoadSession returns ok=false when no session has been persisted yet.
	LoadSession(passphrase string) (Session, bool, error)
	ClearSession() error
}

// APIClient is the Cofau backend reached over HTTPS with bearer-token auth.
type APIClient interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	Me(ctx context.Context) (User, error)

	Feed(ctx context.Context) ([]Post, error)
	Happening(ctx context.Context) ([]Story, error)
	ChatList(ctx context.Context) ([]ChatSummary, error)
	Leaderboard(ctx context.Context, kind LeaderboardKind) ([]Contributor, error)

	SearchUsers(ctx context.Context, query string) ([]UserSummary, error)
	SearchPosts(ctx context.Context, query string) ([]Post, error)
	SearchLocations(ctx context.Context, query string) ([]Location, error)

	UploadStory(ctx context.Context, media io.Reader, up StoryUpload) (Story, error)
	Profile(ctx context.Context, username string) (Profile, error)
}

// ChatStreamer delivers live chat messages until the context is cancelled.
type ChatStreamer interface {
	Watch(ctx context.Context, onMessage func(ChatMessage)) error
}

// SessionService is the single source of truth for the auth token and the
// current user, shared by every screen.
type SessionService interface {
	Restore() SessionState
	Login(ctx context.Context, creds Credentials) error
	Logout() error
	State() SessionState
	Current() Session
}
