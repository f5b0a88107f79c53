package kv

import (
	"context"
	"fmt"

	"github.com/ogurasousui/staff-directory/internal/platform/config"
)

// New は storage 設定に応じたドライバの Store を生成します。
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch Driver(cfg.Driver) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(cfg.Path)
	case DriverSQLite:
		return NewSQLite(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("kv: unsupported driver %q", cfg.Driver)
	}
}
