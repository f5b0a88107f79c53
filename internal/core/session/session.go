package session

import "errors"

// Session は認証済みの状態を表します。
type Session struct {
	Email string
}

var ErrPersistence = errors.New("session: persistence failure")

// 疑似認証の受理条件です。実在の資格情報検証は意図的に行いません。
const minPasswordLength = 4
