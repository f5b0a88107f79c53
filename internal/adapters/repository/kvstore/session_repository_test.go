package kvstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ogurasousui/staff-directory/internal/core/session"
	"github.com/ogurasousui/staff-directory/internal/platform/kv"
)

func TestSessionRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewSessionRepository(kv.NewMemory())
	ctx := context.Background()

	if _, ok, err := repo.Load(ctx); err != nil || ok {
		t.Fatalf("expected absent session, got ok=%t err=%v", ok, err)
	}

	if err := repo.Save(ctx, session.Session{Email: "a@b.com"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	sess, ok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !ok || sess.Email != "a@b.com" {
		t.Fatalf("unexpected session: ok=%t %+v", ok, sess)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, ok, err := repo.Load(ctx); err != nil || ok {
		t.Fatalf("expected session removed, got ok=%t err=%v", ok, err)
	}
}

func TestSessionRepository_WireFormat(t *testing.T) {
	t.Parallel()

	store := kv.NewMemory()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	if err := repo.Save(ctx, session.Session{Email: "a@b.com"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	raw, err := store.Get(ctx, "auth")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	var decoded struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected payload shape: %v", err)
	}
	if decoded.User.Email != "a@b.com" {
		t.Fatalf("expected {user:{email}}, got %s", raw)
	}
}

func TestSessionRepository_ClearAbsentIsNoop(t *testing.T) {
	t.Parallel()

	repo := NewSessionRepository(kv.NewMemory())

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("Clear of absent key must be a no-op, got %v", err)
	}
}
