package session

import "context"

// Repository はセッション永続化の抽象です。
type Repository interface {
	// Load は保存済みセッションを返します。ブロブが存在しない場合は
	// ok=false を返します(未認証を意味します)。
	Load(ctx context.Context) (sess Session, ok bool, err error)
	// Save はセッションブロブを保存します。
	Save(ctx context.Context, sess Session) error
	// Clear は保存済みブロブを取り除きます。
	Clear(ctx context.Context) error
}
