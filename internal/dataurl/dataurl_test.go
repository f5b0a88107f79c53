package dataurl

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// 最小の PNG シグネチャです。DetectContentType が image/png と判定します。
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestEncode_ProducesPNGDataURI(t *testing.T) {
	t.Parallel()

	uri, err := Encode(bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %s", uri)
	}
}

func TestEncode_RejectsOversizedImage(t *testing.T) {
	t.Parallel()

	oversized := bytes.NewReader(make([]byte, MaxImageBytes+1))
	if _, err := Encode(oversized); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestEncode_AcceptsExactLimit(t *testing.T) {
	t.Parallel()

	exact := bytes.NewReader(make([]byte, MaxImageBytes))
	if _, err := Encode(exact); err != nil {
		t.Fatalf("expected image at the limit to be accepted, got %v", err)
	}
}
