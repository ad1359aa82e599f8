package store_test

import (
	"testing"

	"cofau/internal/domain"
	"cofau/internal/store"
)

func TestSessionRoundTrip(t *testing.T) {
	s := store.NewSessionFileStore(t.TempDir())

	in := domain.Session{
		Token:       "bearer-token",
		User:        &domain.User{ID: "u1", Email: "demo@cofau.app", Username: "demo"},
		AccountType: domain.AccountRestaurant,
	}
	if err := s.SaveSession("hunter2", in); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	out, ok, err := s.LoadSession("hunter2")
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if !ok {
		t.Fatal("expected a stored session")
	}
	if out.Token != in.Token {
		t.Fatalf("token = %q, want %q", out.Token, in.Token)
	}
	if out.User == nil || out.User.Username != "demo" {
		t.Fatalf("user = %+v", out.User)
	}
	if out.AccountType != domain.AccountRestaurant {
		t.Fatalf("account type = %q", out.AccountType)
	}
	if out.SavedUTC == 0 {
		t.Fatal("SavedUTC not stamped")
	}
}

func TestLoadSession_Missing(t *testing.T) {
	s := store.NewSessionFileStore(t.TempDir())
	_, ok, err := s.LoadSession("pass")
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if ok {
		t.Fatal("expected no session")
	}
}

func TestLoadSession_WrongPassphrase(t *testing.T) {
	s := store.NewSessionFileStore(t.TempDir())
	if err := s.SaveSession("right", domain.Session{Token: "tok"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if _, _, err := s.LoadSession("wrong"); err == nil {
		t.Fatal("expected decryption error")
	}
}

func TestClearSession(t *testing.T) {
	s := store.NewSessionFileStore(t.TempDir())
	if err := s.SaveSession("pass", domain.Session{Token: "tok"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	_, ok, err := s.LoadSession("pass")
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if ok {
		t.Fatal("session survived ClearSession")
	}
}

func TestClearSession_MissingIsNoop(t *testing.T) {
	s := store.NewSessionFileStore(t.TempDir())
	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession on empty dir: %v", err)
	}
}
