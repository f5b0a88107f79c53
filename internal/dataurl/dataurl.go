// Package dataurl は画像ファイルを data URI 文字列へ変換します。
package dataurl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxImageBytes は受け付ける画像サイズの上限です。
const MaxImageBytes = 5 << 20 // 5 MiB

// ErrTooLarge は画像がサイズ上限を超えたことを示します。
var ErrTooLarge = errors.New("dataurl: image exceeds 5 MiB limit")

// Encode は r の内容を読み取り、メディアタイプを判別した上で
// base64 の data URI を返します。上限を超えた場合は ErrTooLarge を返します。
func Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("dataurl: read image: %w", err)
	}
	if len(data) > MaxImageBytes {
		return "", ErrTooLarge
	}

	mediaType := http.DetectContentType(data)
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
