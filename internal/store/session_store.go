package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cofau/internal/domain"
	"cofau/internal/util/memzero"
)

const sessionFile = "session.enc"

// SessionFileStore keeps the session in a single encrypted file under dir.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

func (s *SessionFileStore) SaveSession(passphrase string, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.SavedUTC = time.Now().Unix()
	raw, err := marshalIndent(sess)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	enc, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(s.dir, sessionFile), enc, 0o600)
}

// LoadSession returns ok=false when no session file exists.
func (s *SessionFileStore) LoadSession(passphrase string) (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	raw, err := decrypt(passphrase, enc)
	if err != nil {
		return domain.Session{}, false, err
	}
	var sess domain.Session
	err = unmarshal(raw, &sess)
	memzero.Zero(raw)
	if err != nil {
		return domain.Session{}, false, err
	}
	return sess, true, nil
}

func (s *SessionFileStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
