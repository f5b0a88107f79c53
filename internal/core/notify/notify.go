package notify

// Variant は通知の見た目の種別です。
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification は操作結果の通知です。
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier は通知面の抽象です。fire-and-forget で、戻り値はありません。
type Notifier interface {
	Notify(n Notification)
}

// Nop は何もしない Notifier です。
type Nop struct{}

func (Nop) Notify(Notification) {}
