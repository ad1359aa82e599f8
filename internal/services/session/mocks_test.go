package session_test

import (
	"context"
	"errors"
	"io"

	"cofau/internal/domain"
)

type mockStore struct {
	saveFunc  func(passphrase string, s domain.Session) error
	loadFunc  func(passphrase string) (domain.Session, bool, error)
	clearFunc func() error

	saves  int
	clears int
}

func (m *mockStore) SaveSession(passphrase string, s domain.Session) error {
	m.saves++
	if m.saveFunc != nil {
		return m.saveFunc(passphrase, s)
	}
	return nil
}

func (m *mockStore) LoadSession(passphrase string) (domain.Session, bool, error) {
	if m.loadFunc != nil {
		return m.loadFunc(passphrase)
	}
	return domain.Session{}, false, nil
}

func (m *mockStore) ClearSession() error {
	m.clears++
	if m.clearFunc != nil {
		return m.clearFunc()
	}
	return nil
}

var errNotStubbed = errors.New("not stubbed")

type mockAPI struct {
	loginFunc func(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
	logins    int
}

func (m *mockAPI) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	m.logins++
	if m.loginFunc != nil {
		return m.loginFunc(ctx, creds)
	}
	return domain.LoginResult{}, errNotStubbed
}

func (m *mockAPI) Me(ctx context.Context) (domain.User, error) {
	return domain.User{}, errNotStubbed
}

func (m *mockAPI) Feed(ctx context.Context) ([]domain.Post, error) { return nil, errNotStubbed }

func (m *mockAPI) Happening(ctx context.Context) ([]domain.Story, error) {
	return nil, errNotStubbed
}

func (m *mockAPI) ChatList(ctx context.Context) ([]domain.ChatSummary, error) {
	return nil, errNotStubbed
}

func (m *mockAPI) Leaderboard(ctx context.Context, kind domain.LeaderboardKind) ([]domain.Contributor, error) {
	return nil, errNotStubbed
}

func (m *mockAPI) SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error) {
	return nil, errNotStubbed
}

func (m *mockAPI) SearchPosts(ctx context.Context, query string) ([]domain.Post, error) {
	return nil, errNotStubbed
}

func (m *mockAPI) SearchLocations(ctx context.Context, query string) ([]domain.Location, error) {
	return nil, errNotStubbed
}

func (m *mockAPI) UploadStory(ctx context.Context, media io.Reader, up domain.StoryUpload) (domain.Story, error) {
	return domain.Story{}, errNotStubbed
}

func (m *mockAPI) Profile(ctx context.Context, username string) (domain.Profile, error) {
	return domain.Profile{}, errNotStubbed
}
