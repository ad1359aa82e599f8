package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"cofau/internal/domain"
	"cofau/internal/util/memzero"
)

var (
	// ErrInvalidCredentials wraps the validator failure on login input.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service is the single source of truth for the auth token and current user.
//
// The persisted session is trusted provisionally on restore: no server
// round-trip happens, but a JWT whose exp claim already passed is discarded
// so the first screen does not render with a token the backend will reject.
type Service struct {
	store      domain.SessionStore
	api        domain.APIClient
	passphrase string
	validate   *validator.Validate

	mu    sync.RWMutex
	state domain.SessionState
	sess  domain.Session // token held separately in tok so Logout can wipe it
	tok   []byte
}

// New returns a session service in the loading state; call Restore before
// reading State.
func New(store domain.SessionStore, api domain.APIClient, passphrase string) *Service {
	return &Service{
		store:      store,
		api:        api,
		passphrase: passphrase,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		state:      domain.StateLoading,
	}
}

// Restore reads the persisted session and settles the state. It is a no-op
// after the first call.
func (s *Service) Restore() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateLoading {
		return s.state
	}

	sess, ok, err := s.store.LoadSession(s.passphrase)
	if err != nil || !ok || !sess.Authenticated() {
		s.state = domain.StateUnauthenticated
		return s.state
	}
	if tokenExpired(sess.Token, time.Now()) {
		_ = s.store.ClearSession()
		s.state = domain.StateUnauthenticated
		return s.state
	}

	s.tok = []byte(sess.Token)
	sess.Token = ""
	s.sess = sess
	s.state = domain.StateAuthenticated
	return s.state
}

// Login validates creds, exchanges them for a token, and persists the result.
// On any failure the session stays unauthenticated and nothing is persisted.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) error {
	if err := s.validate.Struct(creds); err != nil {
		return errors.Join(ErrInvalidCredentials, err)
	}

	res, err := s.api.Login(ctx, creds)
	if err != nil {
		s.mu.Lock()
		if s.state == domain.StateLoading {
			s.state = domain.StateUnauthenticated
		}
		s.mu.Unlock()
		return err
	}

	user := res.User
	accountType := user.AccountType
	if accountType == "" {
		accountType = domain.AccountUser
	}

	s.mu.Lock()
	s.sess = domain.Session{
		User:        &user,
		AccountType: accountType,
	}
	s.tok = []byte(res.Token)
	s.state = domain.StateAuthenticated
	s.mu.Unlock()

	return s.store.SaveSession(s.passphrase, domain.Session{
		Token:       res.Token,
		User:        &user,
		AccountType: accountType,
	})
}

// Logout zeroes the token bytes, clears the in-memory session, and removes
// the persisted file.
func (s *Service) Logout() error {
	s.mu.Lock()
	memzero.Zero(s.tok)
	s.tok = nil
	s.sess = domain.Session{}
	s.state = domain.StateUnauthenticated
	s.mu.Unlock()

	return s.store.ClearSession()
}

func (s *Service) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns a snapshot of the session; zero value when unauthenticated.
func (s *Service) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sess
	sess.Token = string(s.tok)
	return sess
}

// Token is the bearer-token source handed to the API client.
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.tok)
}

// tokenExpired reports whether tok is a JWT with an exp claim in the past.
// The signature is not checked; only the backend can do that. Opaque tokens
// and JWTs without exp are treated as not expired.
func tokenExpired(tok string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
