package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore はキーごとに 1 つの JSON ファイルをルートディレクトリ配下に
// 置くファイルシステム実装です。書き込みは一時ファイルへの書き出しと
// rename で原子的に行います。
type FileStore struct {
	root string
}

// NewFile はルートディレクトリを作成し FileStore を生成します。
func NewFile(root string) (*FileStore, error) {
	if root == "" {
		return nil, fmt.Errorf("kv: file store root must be set")
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("kv: create root %s: %w", root, err)
	}
	return &FileStore{root: root}, nil
}

// Get はキーに対応するファイルの内容を返します。
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("kv: read %s: %w", key, err)
	}
	return data, nil
}

// Set は値を一時ファイルへ書き出してから rename します。
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("kv: create temp for %s: %w", key, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("kv: close temp for %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("kv: rename %s: %w", key, err)
	}
	return nil
}

// Delete はキーに対応するファイルを取り除きます。存在しない場合は no-op です。
func (s *FileStore) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("kv: remove %s: %w", key, err)
	}
	return nil
}

// Close は何もしません。
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("kv: invalid key %q", key)
	}
	return filepath.Join(s.root, key+".json"), nil
}
