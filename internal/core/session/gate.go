package session

import (
	"context"
	"fmt"
	"sync"
)

// Gate は認証フラグとログイン中の識別子(メールアドレス)を所有します。
// セッションはプロセスローカルに一つだけで、有効期限はありません。
type Gate struct {
	mu      sync.Mutex
	repo    Repository
	current *Session
}

// NewGate は Gate を生成します。
func NewGate(repo Repository) *Gate {
	return &Gate{repo: repo}
}

// Login は email が空でなくパスワードが 4 文字以上であれば受理します
// (疑似認証)。受理時はセッションを永続化して true を返します。
// 拒否時は状態を変えず false を返します。拒否理由は区別しません。
func (g *Gate) Login(ctx context.Context, email, password string) (bool, error) {
	if email == "" || len(password) < minPasswordLength {
		return false, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	sess := Session{Email: email}
	if err := g.repo.Save(ctx, sess); err != nil {
		return false, fmt.Errorf("%w: save session: %v", ErrPersistence, err)
	}
	g.current = &sess
	return true, nil
}

// Logout は認証状態を消去し、保存済みブロブを取り除きます。
func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.current = nil
	if err := g.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear session: %v", ErrPersistence, err)
	}
	return nil
}

// Restore は起動時に保存済みブロブからセッションを復元します。
// ブロブが存在しない場合は未認証のままです。
func (g *Gate) Restore(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	sess, ok, err := g.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: load session: %v", ErrPersistence, err)
	}
	if !ok {
		g.current = nil
		return nil
	}
	g.current = &sess
	return nil
}

// Current は現在のセッションと認証済みかどうかを返します。
func (g *Gate) Current() (Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return Session{}, false
	}
	return *g.current, true
}
