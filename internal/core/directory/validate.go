package directory

import "strings"

// ValidateFormData はフォーム送信境界での入力検証です。
// Store 自体はこの検証を行いません。呼び出し側(プレゼンテーション層)が
// 変更操作の前に必ず呼び出します。
func ValidateFormData(in FormData) error {
	if strings.TrimSpace(in.FullName) == "" {
		return ErrFullNameRequired
	}
	if !IsValidGender(in.Gender) {
		return ErrInvalidGender
	}
	if in.DateOfBirth.IsZero() {
		return ErrInvalidDateOfBirth
	}
	if !IsAdmissibleState(in.State) {
		return ErrInvalidState
	}
	return nil
}
