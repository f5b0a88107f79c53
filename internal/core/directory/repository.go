package directory

import "context"

// Repository は社員リスト永続化の抽象です。
// リストは常に全件単位でシリアライズされます(差分保存はしません)。
type Repository interface {
	// Load は保存済みのリストを返します。キー自体が存在しない場合は
	// ok=false を返し、空リストとは区別されます。
	Load(ctx context.Context) (employees []Employee, ok bool, err error)
	// Save は現在のリスト全体を保存します。
	Save(ctx context.Context, employees []Employee) error
}
