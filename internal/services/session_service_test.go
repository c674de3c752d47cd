package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"yodiet/internal/models"
)

type stubSessionUsers struct {
	users      map[uint]models.User
	currentID  uint
	hasCurrent bool
	setErr     error
}

func (stub *stubSessionUsers) FindByID(userID uint) (models.User, bool, error) {
	user, ok := stub.users[userID]
	return user, ok, nil
}

func (stub *stubSessionUsers) FindCurrent() (models.User, bool, error) {
	if !stub.hasCurrent {
		return models.User{}, false, nil
	}
	user, ok := stub.users[stub.currentID]
	return user, ok, nil
}

func (stub *stubSessionUsers) SetCurrent(userID uint) error {
	if stub.setErr != nil {
		return stub.setErr
	}
	if _, ok := stub.users[userID]; !ok {
		return errors.New("no such user")
	}
	stub.currentID = userID
	stub.hasCurrent = true
	return nil
}

func (stub *stubSessionUsers) ClearCurrent() error {
	stub.hasCurrent = false
	return nil
}

func (stub *stubSessionUsers) WatchCurrent(context.Context) (<-chan *models.User, error) {
	return nil, errors.New("not supported by stub")
}

func sessionFixture(t *testing.T) (*SessionService, *stubSessionUsers, string) {
	t.Helper()

	users := &stubSessionUsers{users: map[uint]models.User{
		1: {ID: 1, UserName: "ann23", Email: "ann@x.com"},
		2: {ID: 2, UserName: "bob42", Email: "bob@x.com"},
	}}
	tokenPath := filepath.Join(t.TempDir(), "session.token")
	service := NewSessionService(users, "test-secret", time.Hour, tokenPath)
	return service, users, tokenPath
}

func TestBeginMarksUserAndPersistsToken(t *testing.T) {
	service, users, tokenPath := sessionFixture(t)

	if err := service.Begin(users.users[1]); err != nil {
		t.Fatalf("begin session: %v", err)
	}

	current, found, err := service.Current()
	if err != nil || !found || current.ID != 1 {
		t.Fatalf("expected user 1 current, got found=%v err=%v user=%+v", found, err, current)
	}
	if _, err := os.Stat(tokenPath); err != nil {
		t.Fatalf("expected restore token on disk: %v", err)
	}
}

func TestResumeRestoresMatchingSession(t *testing.T) {
	service, users, _ := sessionFixture(t)

	if err := service.Begin(users.users[1]); err != nil {
		t.Fatalf("begin session: %v", err)
	}

	restored, found, err := service.Resume()
	if err != nil || !found {
		t.Fatalf("resume: found=%v err=%v", found, err)
	}
	if restored.ID != 1 {
		t.Fatalf("expected user 1, got %+v", restored)
	}
}

func TestResumeRejectsMarkerTokenMismatch(t *testing.T) {
	service, users, tokenPath := sessionFixture(t)

	if err := service.Begin(users.users[1]); err != nil {
		t.Fatalf("begin session: %v", err)
	}
	// Marker moved behind the token's back.
	users.currentID = 2

	if _, found, err := service.Resume(); err != nil || found {
		t.Fatalf("expected mismatch to read as logged out: found=%v err=%v", found, err)
	}
	if _, err := os.Stat(tokenPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected the stale token to be discarded")
	}
}

func TestResumeRejectsTamperedToken(t *testing.T) {
	service, users, tokenPath := sessionFixture(t)

	if err := service.Begin(users.users[1]); err != nil {
		t.Fatalf("begin session: %v", err)
	}
	if err := os.WriteFile(tokenPath, []byte("not-a-token"), 0o600); err != nil {
		t.Fatalf("tamper token: %v", err)
	}

	if _, found, err := service.Resume(); err != nil || found {
		t.Fatalf("expected tampered token to read as logged out: found=%v err=%v", found, err)
	}
}

func TestResumeExpiredTokenReadsAsLoggedOut(t *testing.T) {
	users := &stubSessionUsers{users: map[uint]models.User{1: {ID: 1}}}
	tokenPath := filepath.Join(t.TempDir(), "session.token")
	service := NewSessionService(users, "test-secret", -time.Hour, tokenPath)
	// A non-positive TTL falls back to the default, so build the expiry by
	// hand: begin with a service whose TTL already passed.
	service.tokenTTL = -time.Hour

	if err := service.Begin(users.users[1]); err != nil {
		t.Fatalf("begin session: %v", err)
	}
	if _, found, err := service.Resume(); err != nil || found {
		t.Fatalf("expected expired token to read as logged out: found=%v err=%v", found, err)
	}
}

func TestEndClearsMarkerAndToken(t *testing.T) {
	service, users, tokenPath := sessionFixture(t)

	if err := service.Begin(users.users[1]); err != nil {
		t.Fatalf("begin session: %v", err)
	}
	if err := service.End(); err != nil {
		t.Fatalf("end session: %v", err)
	}

	if _, found, err := service.Current(); err != nil || found {
		t.Fatalf("expected no current user: found=%v err=%v", found, err)
	}
	if _, err := os.Stat(tokenPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected token removed on logout")
	}
}

func TestResumeWithoutTokenFile(t *testing.T) {
	service, users, _ := sessionFixture(t)
	users.hasCurrent = true
	users.currentID = 1

	if _, found, err := service.Resume(); err != nil || found {
		t.Fatalf("expected no session without a token file: found=%v err=%v", found, err)
	}
}
