package session

import (
	"context"
	"errors"
	"testing"
)

type fakeSessionRepo struct {
	stored  *Session
	saveErr error
}

func (r *fakeSessionRepo) Load(_ context.Context) (Session, bool, error) {
	if r.stored == nil {
		return Session{}, false, nil
	}
	return *r.stored, true, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, sess Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := sess
	r.stored = &clone
	return nil
}

func (r *fakeSessionRepo) Clear(_ context.Context) error {
	r.stored = nil
	return nil
}

func TestGate_Login_RejectsShortPassword(t *testing.T) {
	t.Parallel()

	repo := &fakeSessionRepo{}
	gate := NewGate(repo)

	ok, err := gate.Login(context.Background(), "a@b.com", "123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if ok {
		t.Fatal("expected password of length 3 to be rejected")
	}
	if _, authed := gate.Current(); authed {
		t.Fatal("session must remain unauthenticated after rejection")
	}
	if repo.stored != nil {
		t.Fatal("no blob must be persisted on rejection")
	}
}

func TestGate_Login_RejectsEmptyEmail(t *testing.T) {
	t.Parallel()

	gate := NewGate(&fakeSessionRepo{})

	ok, err := gate.Login(context.Background(), "", "1234")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if ok {
		t.Fatal("expected empty email to be rejected")
	}
}

func TestGate_Login_AcceptsAndPersists(t *testing.T) {
	t.Parallel()

	repo := &fakeSessionRepo{}
	gate := NewGate(repo)

	ok, err := gate.Login(context.Background(), "a@b.com", "1234")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected password of length 4 to be accepted")
	}

	sess, authed := gate.Current()
	if !authed || sess.Email != "a@b.com" {
		t.Fatalf("unexpected session state: %+v authed=%t", sess, authed)
	}
	if repo.stored == nil || repo.stored.Email != "a@b.com" {
		t.Fatalf("expected persisted blob, got %+v", repo.stored)
	}
}

func TestGate_Login_PersistenceFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeSessionRepo{saveErr: errors.New("quota exceeded")}
	gate := NewGate(repo)

	_, err := gate.Login(context.Background(), "a@b.com", "1234")
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if _, authed := gate.Current(); authed {
		t.Fatal("state must not change when persistence fails")
	}
}

func TestGate_LogoutClearsStateAndBlob(t *testing.T) {
	t.Parallel()

	repo := &fakeSessionRepo{}
	gate := NewGate(repo)

	if _, err := gate.Login(context.Background(), "a@b.com", "1234"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if err := gate.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	if _, authed := gate.Current(); authed {
		t.Fatal("expected unauthenticated after logout")
	}
	if repo.stored != nil {
		t.Fatal("expected blob removed after logout")
	}
}

func TestGate_Restore(t *testing.T) {
	t.Parallel()

	repo := &fakeSessionRepo{stored: &Session{Email: "a@b.com"}}
	gate := NewGate(repo)

	if err := gate.Restore(context.Background()); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	sess, authed := gate.Current()
	if !authed || sess.Email != "a@b.com" {
		t.Fatalf("expected restored session, got %+v authed=%t", sess, authed)
	}
}

func TestGate_Restore_AbsentBlobMeansUnauthenticated(t *testing.T) {
	t.Parallel()

	gate := NewGate(&fakeSessionRepo{})

	if err := gate.Restore(context.Background()); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if _, authed := gate.Current(); authed {
		t.Fatal("expected unauthenticated when blob is absent")
	}
}
