package session

import (
	"testing"

	"cofau/internal/domain"
)

type stubStore struct {
	sess domain.Session
	ok   bool
}

func (s *stubStore) SaveSession(string, domain.Session) error { return nil }

func (s *stubStore) LoadSession(string) (domain.Session, bool, error) {
	return s.sess, s.ok, nil
}

func (s *stubStore) ClearSession() error { return nil }

func TestLogout_WipesTokenBytes(t *testing.T) {
	svc := New(&stubStore{
		sess: domain.Session{Token: "super-secret-bearer"},
		ok:   true,
	}, nil, "pass")
	svc.Restore()

	buf := svc.tok
	if len(buf) == 0 {
		t.Fatal("no token buffer after restore")
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("token byte %d not wiped", i)
		}
	}
	if svc.Token() != "" {
		t.Fatalf("Token = %q after logout", svc.Token())
	}
}
