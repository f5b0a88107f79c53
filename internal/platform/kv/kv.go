// Package kv はブラウザのローカルストレージに相当する
// キーバリュー型ブロブストアを提供します。
package kv

import (
	"context"
	"errors"
)

// Driver はブロブストアのバックエンド種別です。
type Driver string

const (
	// DriverMemory はテストおよびメモリのみの縮退運転向けです。
	DriverMemory Driver = "memory"
	// DriverFile はキーごとに 1 ファイルを置くローカルファイルシステム実装です。
	DriverFile Driver = "file"
	// DriverSQLite は単一テーブルにブロブを保持する SQLite 実装です。
	DriverSQLite Driver = "sqlite"
)

// ErrKeyNotFound はキーが存在しないことを示します。
var ErrKeyNotFound = errors.New("kv: key not found")

// Store はブロブストアの抽象です。値は不透明なバイト列として扱われます。
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
