// Package notify は通知面の既定実装を提供します。
package notify

import (
	"go.uber.org/zap"

	corenotify "github.com/ogurasousui/staff-directory/internal/core/notify"
)

// ZapNotifier は通知を構造化ログとして書き出す Notifier です。
type ZapNotifier struct {
	log *zap.Logger
}

// NewZapNotifier は ZapNotifier を生成します。
func NewZapNotifier(log *zap.Logger) *ZapNotifier {
	return &ZapNotifier{log: log}
}

// Notify は通知を書き出します。戻り値はありません(fire-and-forget)。
func (n *ZapNotifier) Notify(notification corenotify.Notification) {
	fields := []zap.Field{
		zap.String("title", notification.Title),
		zap.String("description", notification.Description),
		zap.String("variant", string(notification.Variant)),
	}

	if notification.Variant == corenotify.VariantDestructive {
		n.log.Warn("notification", fields...)
		return
	}
	n.log.Info("notification", fields...)
}
