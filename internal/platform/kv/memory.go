package kv

import (
	"context"
	"sync"
)

// MemoryStore はマップに保持するインメモリ実装です。
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory は MemoryStore を生成します。
func NewMemory() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get はキーに対応する値のコピーを返します。
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set は値のコピーを保存します。
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

// Delete はキーを取り除きます。存在しないキーは no-op です。
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close は何もしません。
func (s *MemoryStore) Close() error {
	return nil
}
