package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ogurasousui/staff-directory/internal/core/session"
	"github.com/ogurasousui/staff-directory/internal/platform/kv"
)

const authKey = "auth"

// authRecord は auth キー配下のワイヤ表現です。キーの存在自体が
// 認証済みを意味します。
type authRecord struct {
	User authUser `json:"user"`
}

type authUser struct {
	Email string `json:"email"`
}

// SessionRepository はブロブストアを利用したセッション永続化の実装です。
type SessionRepository struct {
	store kv.Store
}

// NewSessionRepository は SessionRepository を生成します。
func NewSessionRepository(store kv.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Load は auth キーのブロブを読み出します。キーが存在しない場合は
// ok=false(未認証)を返します。
func (r *SessionRepository) Load(ctx context.Context) (session.Session, bool, error) {
	data, err := r.store.Get(ctx, authKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, fmt.Errorf("kvstore: get %s: %w", authKey, err)
	}

	var rec authRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return session.Session{}, false, fmt.Errorf("kvstore: decode %s: %w", authKey, err)
	}

	return session.Session{Email: rec.User.Email}, true, nil
}

// Save はセッションを auth キーへ保存します。
func (r *SessionRepository) Save(ctx context.Context, sess session.Session) error {
	data, err := json.Marshal(authRecord{User: authUser{Email: sess.Email}})
	if err != nil {
		return fmt.Errorf("kvstore: encode %s: %w", authKey, err)
	}

	if err := r.store.Set(ctx, authKey, data); err != nil {
		return fmt.Errorf("kvstore: set %s: %w", authKey, err)
	}
	return nil
}

// Clear は auth キーを取り除きます。
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, authKey); err != nil {
		return fmt.Errorf("kvstore: delete %s: %w", authKey, err)
	}
	return nil
}
